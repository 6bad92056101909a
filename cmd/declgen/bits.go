package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"declgen/binfmt"
	"declgen/internal/diag"
)

var bitsCmd = &cobra.Command{
	Use:   "bits <value>",
	Short: "Render the binary literal pattern of an unsigned value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console := diag.NewConsoleReporter(cmd.ErrOrStderr(), colorEnabled(cmd))

		value, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			console.Report(diag.Errorf(diag.CodeGenerate, args[0], "not an unsigned integer: %v", err))
			return errFailed
		}

		widthFlag, _ := cmd.Flags().GetInt("width")
		narrow, err := safecast.Conv[uint8](widthFlag)
		if err != nil {
			console.Report(diag.Errorf(diag.CodeInvalidWidth, strconv.Itoa(widthFlag), "%v", err))
			return errFailed
		}

		width, err := binfmt.ParseWidth(int(narrow))
		if err != nil {
			console.Report(diag.Errorf(diag.CodeInvalidWidth, strconv.Itoa(widthFlag), "%v", err))
			return errFailed
		}

		formatted, err := binfmt.Format(value, width)
		if err != nil {
			console.Report(diag.Errorf(diag.CodeInvalidWidth, strconv.Itoa(widthFlag), "%v", err))
			return errFailed
		}

		fmt.Fprintf(cmd.OutOrStdout(), formatted.Pattern+"\n", formatted.Args()...)
		return nil
	},
}

func init() {
	bitsCmd.Flags().IntP("width", "w", 64, "bit width (8|16|32|64)")
}
