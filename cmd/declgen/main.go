// Package main provides the CLI entrypoint for declgen.
//
// declgen is a declarative generation tool that:
//   - Reads a TOML manifest of canonical symbol lists
//   - Emits ordinal constant sets with index-aligned name tables as Go source
//   - Renders binary literal display patterns for unsigned values
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "declgen",
	Short:        "Declarative generation toolkit",
	Long:         "declgen generates ordinal enums with index-aligned name tables from canonical lists,\nand renders binary literal patterns for unsigned integers.",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(bitsCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func colorEnabled(cmd *cobra.Command) bool {
	switch val, _ := cmd.Flags().GetString("color"); val {
	case "on":
		return true
	case "off":
		return false
	}

	return !color.NoColor
}
