package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/privacykit-dev/privacykit/internal/config"
	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/mapper"
	"github.com/privacykit-dev/privacykit/internal/regulations"
	"github.com/privacykit-dev/privacykit/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Peripheral document generators",
	Long: `Tools groups the peripheral generators that produce supporting
documents alongside the main privacy policy: the third-party processor
disclosure, the entity role determination memo, and a standalone cookie
policy.`,
}

var (
	toolsOutput string

	processorsCmd = &cobra.Command{
		Use:   "processors <input.yaml>",
		Short: "Generate a third-party processor disclosure",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcessors,
	}

	roleMemoCmd = &cobra.Command{
		Use:   "role-memo",
		Short: "Determine the organization's entity role and generate a memo",
		Long: `Role-memo walks an interactive yes/no assessment to classify the
organization as a controller, processor, or joint controller, then writes
a memo recording the determination, the decision path, and the regulatory
implications per jurisdiction.`,
		RunE: runRoleMemo,
	}

	roleMemoJurisdictions []string

	cookiePolicyCmd = &cobra.Command{
		Use:   "cookie-policy <input.yaml>",
		Short: "Generate a standalone cookie policy",
		Args:  cobra.ExactArgs(1),
		RunE:  runCookiePolicy,
	}
)

func init() {
	toolsCmd.PersistentFlags().StringVar(&toolsOutput, "output", "", "Write to file instead of stdout")
	roleMemoCmd.Flags().StringSliceVar(&roleMemoJurisdictions, "jurisdictions", nil, "Jurisdictions to cover in the implications section")

	toolsCmd.AddCommand(processorsCmd)
	toolsCmd.AddCommand(roleMemoCmd)
	toolsCmd.AddCommand(cookiePolicyCmd)
	rootCmd.AddCommand(toolsCmd)
}

func writeToolOutput(cmd *cobra.Command, content []byte) error {
	if toolsOutput == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}
	if err := os.WriteFile(toolsOutput, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", toolsOutput, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Wrote "+toolsOutput)
	return nil
}

func runProcessors(cmd *cobra.Command, args []string) error {
	input, err := config.LoadInput(args[0])
	if err != nil {
		return err
	}

	requirements := mapper.Map(regulations.NewRegistry(), input)
	content := tools.RenderProcessorDisclosure(tools.ProcessorDisclosureInput{
		Recipients:    input.DataPractices.ThirdPartySharing.Recipients,
		Jurisdictions: input.Jurisdictions,
		Requirements:  tools.FilterThirdParty(requirements),
		GeneratedAt:   time.Now(),
	})
	return writeToolOutput(cmd, content)
}

func runRoleMemo(cmd *cobra.Command, _ []string) error {
	var answers []bool
	node := tools.RoleTreeRoot
	for {
		if _, done := tools.RoleOutcomeNode(node); done {
			break
		}
		question, ok := tools.RoleQuestionNode(node)
		if !ok {
			return fmt.Errorf("role tree references unknown node %q", node)
		}
		var answer bool
		err := huh.NewConfirm().
			Title(question.Question).
			Description(question.HelpText).
			Value(&answer).
			Run()
		if err != nil {
			return err
		}
		answers = append(answers, answer)
		if answer {
			node = question.Yes
		} else {
			node = question.No
		}
	}

	outcome, path, err := tools.WalkRoleTree(answers)
	if err != nil {
		return err
	}

	jurisdictions := make([]domain.Jurisdiction, 0, len(roleMemoJurisdictions))
	for _, raw := range roleMemoJurisdictions {
		j := domain.Jurisdiction(raw)
		if err := j.Validate(); err != nil {
			return err
		}
		jurisdictions = append(jurisdictions, j)
	}
	if len(jurisdictions) == 0 {
		options := make([]huh.Option[string], 0, len(domain.AllJurisdictions))
		for _, j := range domain.AllJurisdictions {
			options = append(options, huh.NewOption(j.Label(), string(j)))
		}
		var selected []string
		err := huh.NewMultiSelect[string]().
			Title("Select jurisdictions to cover in the implications section").
			Options(options...).
			Value(&selected).
			Run()
		if err != nil {
			return err
		}
		for _, raw := range selected {
			jurisdictions = append(jurisdictions, domain.Jurisdiction(raw))
		}
	}

	content := tools.RenderRoleDeterminationMemo(tools.RoleDeterminationInput{
		EntityType:         outcome.EntityType,
		OutcomeLabel:       outcome.Label,
		OutcomeExplanation: outcome.Explanation,
		DecisionPath:       path,
		Jurisdictions:      jurisdictions,
		GeneratedAt:        time.Now(),
	})
	return writeToolOutput(cmd, content)
}

func runCookiePolicy(cmd *cobra.Command, args []string) error {
	input, err := config.LoadInput(args[0])
	if err != nil {
		return err
	}

	var cookies []tools.CookieEntry
	for _, category := range tools.AllCookieCategories {
		cookies = append(cookies, tools.CommonCookies[category]...)
	}

	models := make([]tools.ConsentModel, 0, len(input.Jurisdictions))
	for _, j := range input.Jurisdictions {
		models = append(models, tools.DefaultConsentModel(j))
	}

	content := tools.RenderCookiePolicy(tools.CookiePolicyInput{
		WebsiteURL:     input.OrgProfile.WebsiteURL,
		OrgName:        input.OrgProfile.LegalName,
		Jurisdictions:  input.Jurisdictions,
		Cookies:        cookies,
		ConsentModels:  models,
		BannerPosition: tools.BannerBottom,
		GeneratedAt:    time.Now(),
	})
	return writeToolOutput(cmd, content)
}
