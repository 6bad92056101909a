package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"declgen/binfmt"
	"declgen/canon"
	"declgen/dispatch"
	"declgen/internal/diag"
	"declgen/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifestExample(t *testing.T) {
	t.Parallel()

	m, err := loadManifest(filepath.Join("..", "..", "examples", "basic", "declgen.toml"))
	require.NoError(t, err)

	assert.Equal(t, "calendar", m.Package.Name)
	require.Len(t, m.Enums, 2)
	assert.Equal(t, "Weekday", m.Enums[0].Type)
	assert.Len(t, m.Enums[0].Values, 7)
}

func TestLoadManifestErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	noPkg := filepath.Join(dir, "nopkg.toml")
	require.NoError(t, os.WriteFile(noPkg, []byte("[[enum]]\ntype = \"T\"\nvalues = [\"A\"]\n"), 0o644))
	_, err := loadManifest(noPkg)
	assert.ErrorContains(t, err, "missing package.name")

	noEnums := filepath.Join(dir, "noenums.toml")
	require.NoError(t, os.WriteFile(noEnums, []byte("[package]\nname = \"p\"\n"), 0o644))
	_, err = loadManifest(noEnums)
	assert.ErrorIs(t, err, errNoEnums)
}

func TestRecordsShorthand(t *testing.T) {
	t.Parallel()

	e := enumConfig{Values: []string{"Pending:pending state", "Paid"}}

	assert.Equal(t, []canon.Record{
		{Symbol: "Pending", Display: "pending state"},
		{Symbol: "Paid"},
	}, e.records())
}

func TestArtifactSet(t *testing.T) {
	t.Parallel()

	t.Run("default is all", func(t *testing.T) {
		t.Parallel()

		set, err := enumConfig{}.artifactSet()
		require.NoError(t, err)
		assert.Equal(t, options.ArtifactAll, set)
	})

	t.Run("explicit subset", func(t *testing.T) {
		t.Parallel()

		set, err := enumConfig{Artifacts: []string{"consts", "names"}}.artifactSet()
		require.NoError(t, err)
		assert.True(t, set.Has(options.ArtifactConsts|options.ArtifactNames))
		assert.False(t, set.Has(options.ArtifactStringer))
	})

	t.Run("typo gets a suggestion", func(t *testing.T) {
		t.Parallel()

		_, err := enumConfig{Artifacts: []string{"strnger"}}.artifactSet()
		assert.ErrorContains(t, err, `did you mean "stringer"`)
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("duplicate symbol", func(t *testing.T) {
		t.Parallel()

		_, err := canon.New("Red", "Red")
		require.Error(t, err)

		d := classify("Color", err)
		assert.Equal(t, diag.CodeDuplicateSymbol, d.Code)
		assert.Equal(t, diag.SevError, d.Severity)
		assert.Equal(t, "Red", d.Subject)
	})

	t.Run("undefined arity", func(t *testing.T) {
		t.Parallel()

		family := dispatch.MustNewFamily("greet",
			dispatch.Arity1(func(s string) string { return s }),
		)
		_, err := family.Call("a", "b")
		require.Error(t, err)

		d := classify("", err)
		assert.Equal(t, diag.CodeUndefinedArity, d.Code)
		assert.Equal(t, "greet", d.Subject)
	})

	t.Run("invalid width", func(t *testing.T) {
		t.Parallel()

		_, err := binfmt.ParseWidth(12)
		require.Error(t, err)

		d := classify("12", err)
		assert.Equal(t, diag.CodeInvalidWidth, d.Code)
	})
}

func TestRunManifestGen(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "declgen.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(`[package]
name = "calendar"

[[enum]]
type = "Weekday"
values = ["Monday", "Tuesday"]
`), 0o644))

	require.NoError(t, genCmd.Flags().Set("manifest", manifest))
	require.NoError(t, genCmd.Flags().Set("output", dir))

	var out, errOut strings.Builder
	genCmd.SetOut(&out)
	genCmd.SetErr(&errOut)

	require.NoError(t, runManifest(genCmd, true))
	assert.Contains(t, out.String(), "1 enum(s) generated")

	src, err := os.ReadFile(filepath.Join(dir, "weekday_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "WeekdayMonday Weekday = iota")
	assert.Contains(t, string(src), "var weekdayNames")
}

func TestRunManifestCheckFullBagStillFails(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "declgen.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(`[package]
name = "calendar"

[[enum]]
type = "Weekday"
values = ["Monday", "Monday"]
`), 0o644))

	require.NoError(t, checkCmd.Flags().Set("manifest", manifest))
	require.NoError(t, checkCmd.Flags().Set("max-diagnostics", "0"))
	defer checkCmd.Flags().Set("max-diagnostics", "100")

	var out, errOut strings.Builder
	checkCmd.SetOut(&out)
	checkCmd.SetErr(&errOut)

	err := runManifest(checkCmd, false)
	require.ErrorIs(t, err, errFailed)

	assert.Contains(t, errOut.String(), "1 diagnostic(s) suppressed by --max-diagnostics")
	assert.NotContains(t, out.String(), "checked")
}

func TestGenerateEnumEndToEnd(t *testing.T) {
	t.Parallel()

	src, err := generateEnum("calendar", enumConfig{
		Type:   "Weekday",
		Values: []string{"Monday", "Tuesday"},
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package calendar")
	assert.Contains(t, out, "WeekdayMonday Weekday = iota")
	assert.Contains(t, out, `"Tuesday",`)
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "weekday_gen.go", outputName("Weekday"))
}
