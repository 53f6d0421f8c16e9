package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"

	"github.com/privacykit-dev/privacykit/internal/config"
	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/mapper"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

// RequirementEnv defines the variables available during filter expression
// evaluation.
type RequirementEnv struct {
	ID           string `expr:"id"`
	Jurisdiction string `expr:"jurisdiction"`
	Topic        string `expr:"topic"`
	Subtopic     string `expr:"subtopic"`
	Obligation   string `expr:"obligation"`
	Priority     string `expr:"priority"`
}

var requirementsFilter string

var requirementsCmd = &cobra.Command{
	Use:   "requirements <input.yaml>",
	Short: "List the mapped requirements for an input document",
	Long: `Requirements validates the input document, runs the regulation modules
for the selected jurisdictions, and prints every mapped requirement with
its statutory reference. Use --filter to narrow the list with an
expression over id, jurisdiction, topic, subtopic, obligation, and
priority.`,
	Args: cobra.ExactArgs(1),
	RunE: runRequirements,
}

func init() {
	requirementsCmd.Flags().StringVar(&requirementsFilter, "filter", "",
		`filter expression, e.g. "jurisdiction == 'GDPR' && topic == 'data_subject_rights'"`)
	rootCmd.AddCommand(requirementsCmd)
}

func runRequirements(cmd *cobra.Command, args []string) error {
	input, err := config.LoadInput(args[0])
	if err != nil {
		return err
	}

	// Compile --filter once up front
	var program *vm.Program
	if requirementsFilter != "" {
		program, err = expr.Compile(requirementsFilter,
			expr.Env(RequirementEnv{}),
			expr.AsBool())
		if err != nil {
			return fmt.Errorf("invalid --filter expression: %w\nExample: jurisdiction == 'GDPR' && subtopic contains 'consent'", err)
		}
	}

	requirements := mapper.Map(regulations.NewRegistry(), input)

	shown := 0
	for _, req := range requirements {
		if program != nil {
			keep, err := matchRequirement(program, req)
			if err != nil {
				return err
			}
			if !keep {
				continue
			}
		}
		shown++
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-14s %s\n", req.ID, req.Jurisdiction, req.StatutoryReference)
		fmt.Fprintf(cmd.OutOrStdout(), "    %s / %s [%s]\n", req.Topic, req.Subtopic, req.ObligationType)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d requirements\n", shown, len(requirements))
	return nil
}

func matchRequirement(program *vm.Program, req domain.MappedRequirement) (bool, error) {
	env := RequirementEnv{
		ID:           req.ID,
		Jurisdiction: string(req.Jurisdiction),
		Topic:        string(req.Topic),
		Subtopic:     string(req.Subtopic),
		Obligation:   string(req.ObligationType),
		Priority:     string(req.Priority),
	}
	output, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("filter expression error: %w", err)
	}
	return output.(bool), nil
}
