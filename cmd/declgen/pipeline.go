package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"declgen/binfmt"
	"declgen/canon"
	"declgen/dispatch"
	"declgen/enumset"
	"declgen/internal/diag"
)

// errFailed signals that diagnostics were already reported; cobra only needs
// the non-zero exit.
var errFailed = errors.New("diagnostics reported")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

func runManifest(cmd *cobra.Command, write bool) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")

	bag := diag.NewBag(maxDiags)
	collect := diag.BagReporter{Bag: bag}
	console := diag.NewConsoleReporter(cmd.ErrOrStderr(), colorEnabled(cmd))

	m, err := loadManifest(manifestPath)
	if err != nil {
		console.Report(diag.Errorf(diag.CodeManifest, manifestPath, "%v", err))
		return errFailed
	}

	outDir := "."
	if write {
		outDir, _ = cmd.Flags().GetString("output")
		if err := os.MkdirAll(outDir, dirPerm); err != nil {
			console.Report(diag.Errorf(diag.CodeWriteOutput, outDir, "%v", err))
			return errFailed
		}
	}

	generated := 0
	for _, enum := range m.Enums {
		src, err := generateEnum(m.Package.Name, enum)
		if err != nil {
			collect.Report(classify(enum.Type, err))
			continue
		}

		if !write {
			generated++
			continue
		}

		name := filepath.Join(outDir, outputName(enum.Type))
		if err := os.WriteFile(name, src, filePerm); err != nil {
			collect.Report(diag.Errorf(diag.CodeWriteOutput, name, "%v", err))
			continue
		}
		generated++
	}

	bag.Sort()
	for _, d := range bag.Items() {
		console.Report(d)
	}

	if dropped := bag.Dropped(); dropped > 0 {
		console.Report(diag.Warningf(diag.CodeTooManyDiagnostics, "",
			"%d diagnostic(s) suppressed by --max-diagnostics", dropped))
	}

	// HasErrors counts dropped errors too, so a full bag still fails the run.
	if bag.HasErrors() {
		return errFailed
	}

	verb := "checked"
	if write {
		verb = "generated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d enum(s) %s\n", generated, verb)

	return nil
}

func generateEnum(pkg string, e enumConfig) ([]byte, error) {
	list, err := canon.NewRecords(e.records()...)
	if err != nil {
		return nil, err
	}

	artifacts, err := e.artifactSet()
	if err != nil {
		return nil, err
	}

	return enumset.Generate(enumset.Config{
		Package:   pkg,
		TypeName:  e.Type,
		Artifacts: artifacts,
	}, list)
}

func outputName(typeName string) string {
	return strings.ToLower(typeName) + "_gen.go"
}

// classify maps definition-time failures from the generation core onto stable
// diagnostic codes.
func classify(subject string, err error) diag.Diagnostic {
	var (
		redef      *canon.RedefinitionError
		unresolved *dispatch.UnresolvedError
	)

	switch {
	case errors.As(err, &redef):
		return diag.Errorf(diag.CodeDuplicateSymbol, redef.Symbol,
			"redefined at position %d (first defined at %d) in %s", redef.Again, redef.First, subject)
	case errors.Is(err, canon.ErrInvalidSymbol):
		return diag.Errorf(diag.CodeInvalidSymbol, subject, "%v", err)
	case errors.Is(err, canon.ErrEmptyList):
		return diag.Errorf(diag.CodeEmptyList, subject, "%v", err)
	case errors.As(err, &unresolved):
		return diag.Errorf(diag.CodeUndefinedArity, unresolved.Family,
			"no implementation for arity %d", unresolved.Arity)
	case errors.Is(err, binfmt.ErrInvalidWidth):
		return diag.Errorf(diag.CodeInvalidWidth, subject, "%v", err)
	default:
		return diag.Errorf(diag.CodeGenerate, subject, "%v", err)
	}
}
