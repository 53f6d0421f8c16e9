package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/privacykit-dev/privacykit/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.yaml>",
	Short: "Validate an input document without generating anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.LoadInput(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d jurisdiction(s), %d data categor(ies))\n",
			args[0], len(input.Jurisdictions), len(input.DataPractices.DataCategories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
