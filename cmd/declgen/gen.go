package main

import (
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate enum source files from a manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runManifest(cmd, true)
	},
}

func init() {
	genCmd.Flags().StringP("manifest", "m", "declgen.toml", "manifest file")
	genCmd.Flags().StringP("output", "o", ".", "output directory")
	genCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}
