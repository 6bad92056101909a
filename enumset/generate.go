package enumset

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"unicode"
	"unicode/utf8"

	"declgen/canon"
	"declgen/options"
)

var (
	ErrNoArtifacts    = errors.New("no artifacts selected for generation")
	ErrInvalidPackage = errors.New("package name is not a valid Go identifier")
	ErrInvalidType    = errors.New("type name is not a valid Go identifier")
)

// Config describes one generated enum file.
type Config struct {
	// Package is the package clause of the emitted file.
	Package string
	// TypeName is the generated enum type. Constants are named TypeName+Symbol.
	TypeName string
	// Artifacts selects what to emit. ArtifactStringer implies ArtifactNames,
	// since the String method reads the name table.
	Artifacts options.ArtifactEnum
}

// Generate emits a gofmt-formatted Go source file deriving every selected
// artifact from list. The constant block and the name table come from the same
// member walk, so an edit to the canonical list can never desynchronize them.
func Generate(cfg Config, list canon.List) ([]byte, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, cfg.Package)
	}

	if !token.IsIdentifier(cfg.TypeName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, cfg.TypeName)
	}

	if cfg.Artifacts == options.ArtifactNone {
		return nil, fmt.Errorf("%w: type %s", ErrNoArtifacts, cfg.TypeName)
	}

	if cfg.Artifacts.Has(options.ArtifactStringer) {
		cfg.Artifacts |= options.ArtifactNames
	}

	set := Build(list)

	data := fileData{
		Package:  cfg.Package,
		TypeName: cfg.TypeName,
		Members:  make([]memberData, 0, set.Len()),
		Consts:   cfg.Artifacts.Has(options.ArtifactConsts),
		Names:    cfg.Artifacts.Has(options.ArtifactNames),
		Stringer: cfg.Artifacts.Has(options.ArtifactStringer),
	}

	namespace := map[string]struct{}{cfg.TypeName: {}}
	members := set.Members()
	table := set.NameTable()

	for i := range members {
		constName := cfg.TypeName + members[i].Name
		namespace[constName] = struct{}{}
		data.Members = append(data.Members, memberData{
			Const:   constName,
			Display: table[i].Name,
		})
	}

	names := newStem(namespace)
	data.TotalConst = names.next(cfg.TypeName + "Total")
	data.NamesVar = names.next(lowerFirst(cfg.TypeName) + "Names")
	data.Receiver = names.next(receiverFor(cfg.TypeName))

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("generate %s: %w", cfg.TypeName, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generate %s: format: %w", cfg.TypeName, err)
	}

	return src, nil
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

func receiverFor(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}
