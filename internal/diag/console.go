package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// ConsoleReporter writes human-readable diagnostics to a stream.
type ConsoleReporter struct {
	out      io.Writer
	colorize bool
}

func NewConsoleReporter(out io.Writer, colorize bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, colorize: colorize}
}

func (r *ConsoleReporter) Report(d Diagnostic) {
	label := d.Severity.String()
	if r.colorize {
		switch d.Severity {
		case SevInfo:
			label = infoColor.Sprint(label)
		case SevWarning:
			label = warningColor.Sprint(label)
		case SevError:
			label = errorColor.Sprint(label)
		}
	}

	if d.Subject == "" {
		fmt.Fprintf(r.out, "%s[%d] %s\n", label, d.Code, d.Message)
		return
	}

	fmt.Fprintf(r.out, "%s[%d] %s: %s\n", label, d.Code, d.Subject, d.Message)
}
