package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/tools"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter input document interactively",
	Long: `Init walks through a short questionnaire and writes a starter input
document. The generated file validates against the input schema and can be
passed straight to generate, then refined by hand.`,
	Example: `  privacykit init
  privacykit init --output acme-input.yaml
  privacykit init --no-interactive --jurisdictions PIPEDA,GDPR`,
	RunE: runInit,
}

var initOpts struct {
	Output        string
	LegalName     string
	Email         string
	Website       string
	Jurisdictions []string
	Categories    []string
	NoInteractive bool
}

func init() {
	initCmd.Flags().StringVar(&initOpts.Output, "output", "privacykit-input.yaml", "Output file path")
	initCmd.Flags().StringVar(&initOpts.LegalName, "legal-name", "", "Organization legal name")
	initCmd.Flags().StringVar(&initOpts.Email, "email", "", "Privacy contact email")
	initCmd.Flags().StringVar(&initOpts.Website, "website", "", "Organization website URL")
	initCmd.Flags().StringSliceVar(&initOpts.Jurisdictions, "jurisdictions", nil, "Jurisdictions to target (PIPEDA, QUEBEC_LAW25, ALBERTA_PIPA, BC_PIPA, GDPR, CCPA, CPRA)")
	initCmd.Flags().StringSliceVar(&initOpts.Categories, "categories", nil, "Data categories collected")
	initCmd.Flags().BoolVar(&initOpts.NoInteractive, "no-interactive", false, "Disable interactive prompts")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	var usesCookies, collectsChildrens, usesADM bool

	if !initOpts.NoInteractive {
		if initOpts.LegalName == "" {
			err := huh.NewInput().
				Title("Organization legal name").
				Value(&initOpts.LegalName).
				Run()
			if err != nil {
				return err
			}
		}

		if initOpts.Email == "" {
			err := huh.NewInput().
				Title("Privacy contact email").
				Value(&initOpts.Email).
				Run()
			if err != nil {
				return err
			}
		}

		if initOpts.Website == "" {
			err := huh.NewInput().
				Title("Website URL (optional)").
				Value(&initOpts.Website).
				Run()
			if err != nil {
				return err
			}
		}

		if len(initOpts.Jurisdictions) == 0 {
			options := make([]huh.Option[string], 0, len(domain.AllJurisdictions))
			for _, j := range domain.AllJurisdictions {
				opt := huh.NewOption(j.Label(), string(j))
				if j == domain.JurisdictionPIPEDA {
					opt = opt.Selected(true)
				}
				options = append(options, opt)
			}
			err := huh.NewMultiSelect[string]().
				Title("Select target jurisdictions").
				Options(options...).
				Value(&initOpts.Jurisdictions).
				Run()
			if err != nil {
				return err
			}
		}

		if len(initOpts.Categories) == 0 {
			options := make([]huh.Option[string], 0, len(domain.AllDataCategories))
			for _, cat := range domain.AllDataCategories {
				opt := huh.NewOption(cat.Label(), string(cat))
				if cat == domain.CategoryPersonalIdentifiers {
					opt = opt.Selected(true)
				}
				options = append(options, opt)
			}
			err := huh.NewMultiSelect[string]().
				Title("Select the categories of personal data collected").
				Options(options...).
				Value(&initOpts.Categories).
				Run()
			if err != nil {
				return err
			}
		}

		err := huh.NewConfirm().
			Title("Does the website use cookies or similar tracking technologies?").
			Value(&usesCookies).
			Run()
		if err != nil {
			return err
		}

		err = huh.NewConfirm().
			Title("Does the organization knowingly collect data from children?").
			Value(&collectsChildrens).
			Run()
		if err != nil {
			return err
		}

		err = huh.NewConfirm().
			Title("Does the organization use automated decision-making or profiling?").
			Value(&usesADM).
			Run()
		if err != nil {
			return err
		}
	}

	if len(initOpts.Jurisdictions) == 0 {
		initOpts.Jurisdictions = []string{string(domain.JurisdictionPIPEDA)}
	}
	if len(initOpts.Categories) == 0 {
		initOpts.Categories = []string{string(domain.CategoryPersonalIdentifiers)}
	}

	jurisdictions := make([]domain.Jurisdiction, 0, len(initOpts.Jurisdictions))
	for _, raw := range initOpts.Jurisdictions {
		j := domain.Jurisdiction(raw)
		if err := j.Validate(); err != nil {
			return err
		}
		jurisdictions = append(jurisdictions, j)
	}
	categories := make([]domain.DataCategory, 0, len(initOpts.Categories))
	for _, raw := range initOpts.Categories {
		categories = append(categories, domain.DataCategory(raw))
	}

	input := tools.BuildMinimalInput(tools.MinimalInputOptions{
		Jurisdictions:  jurisdictions,
		DataCategories: categories,
	})
	if initOpts.LegalName != "" {
		input.OrgProfile.LegalName = initOpts.LegalName
	}
	if initOpts.Email != "" {
		input.OrgProfile.DpoContact.Email = initOpts.Email
	}
	input.OrgProfile.WebsiteURL = initOpts.Website
	input.DataPractices.UsesCookies = usesCookies
	input.DataPractices.CollectsChildrensData = collectsChildrens
	input.DataPractices.UsesAutomatedDecisionMaking = usesADM

	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode input document: %w", err)
	}
	if err := os.WriteFile(initOpts.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", initOpts.Output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter input to %s\n", initOpts.Output)
	fmt.Fprintln(cmd.OutOrStdout(), "Review the generated file, then run: privacykit generate "+initOpts.Output)
	return nil
}
