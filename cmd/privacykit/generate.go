package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/privacykit-dev/privacykit/internal/config"
	"github.com/privacykit-dev/privacykit/internal/domain"
	"github.com/privacykit-dev/privacykit/internal/engine"
	"github.com/privacykit-dev/privacykit/internal/regulations"
)

var (
	generateFormats    []string
	generateOutDir     string
	generateDocVersion string
)

var generateCmd = &cobra.Command{
	Use:   "generate <input.yaml>",
	Short: "Generate a privacy policy from an input document",
	Long: `Generate validates the input document, maps it against the selected
jurisdictions' regulation modules, and writes the assembled privacy policy
to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateFormats, "format", []string{"md"}, "output formats (md, docx, html)")
	generateCmd.Flags().StringVar(&generateOutDir, "out-dir", ".", "directory generated documents are written to")
	generateCmd.Flags().StringVar(&generateDocVersion, "doc-version", engine.DefaultVersion, "document version recorded in the output (semver)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, err := config.LoadInput(args[0])
	if err != nil {
		return err
	}

	formats := make([]domain.OutputFormat, 0, len(generateFormats))
	for _, f := range generateFormats {
		format := domain.OutputFormat(f)
		if err := format.Validate(); err != nil {
			return err
		}
		formats = append(formats, format)
	}

	result, err := engine.Generate(regulations.NewRegistry(), input, engine.Options{
		Formats:   formats,
		OutputDir: generateOutDir,
		Version:   generateDocVersion,
	})
	if err != nil {
		return err
	}

	for _, output := range result.Outputs {
		fmt.Fprintln(cmd.OutOrStdout(), output.FilePath)
	}
	return nil
}
