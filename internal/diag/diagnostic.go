// Package diag carries build-time failures from the generation core to the
// user: duplicate symbols, undefined arities, invalid widths, manifest
// problems. It deliberately knows nothing about how diagnostics are produced.
package diag

import "fmt"

// Diagnostic is one reportable finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	// Subject names the offending symbol, family, width or file, if any.
	Subject string
	Message string
}

func (d Diagnostic) String() string {
	if d.Subject == "" {
		return fmt.Sprintf("%s[%d] %s", d.Severity, d.Code, d.Message)
	}

	return fmt.Sprintf("%s[%d] %s: %s", d.Severity, d.Code, d.Subject, d.Message)
}

// Errorf builds an error-severity diagnostic.
func Errorf(code Code, subject, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warningf builds a warning-severity diagnostic.
func Warningf(code Code, subject, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SevWarning,
		Code:     code,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Infof builds an info-severity diagnostic.
func Infof(code Code, subject, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SevInfo,
		Code:     code,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	}
}
