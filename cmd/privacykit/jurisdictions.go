package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/privacykit-dev/privacykit/internal/regulations"
)

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "List the supported jurisdictions",
	Run: func(cmd *cobra.Command, _ []string) {
		registry := regulations.NewRegistry()
		for _, j := range registry.Supported() {
			mod, _ := registry.Module(j)
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s (effective %s)\n", j, mod.FullName(), mod.EffectiveDate())
		}
	},
}

func init() {
	rootCmd.AddCommand(jurisdictionsCmd)
}
