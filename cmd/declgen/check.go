package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a manifest without writing files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runManifest(cmd, false)
	},
}

func init() {
	checkCmd.Flags().StringP("manifest", "m", "declgen.toml", "manifest file")
	checkCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}
