package diag_test

import (
	"strings"
	"testing"

	"declgen/internal/diag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagLimitAndErrors(t *testing.T) {
	t.Parallel()

	bag := diag.NewBag(2)

	assert.True(t, bag.Add(diag.Infof(diag.CodeManifest, "", "loaded")))
	assert.False(t, bag.HasErrors())

	assert.True(t, bag.Add(diag.Errorf(diag.CodeDuplicateSymbol, "Red", "redefined")))
	assert.True(t, bag.HasErrors())

	assert.False(t, bag.Add(diag.Errorf(diag.CodeEmptyList, "", "dropped")))
	assert.Equal(t, 2, bag.Len())
	assert.Equal(t, 1, bag.Dropped())
}

func TestBagFullStillReportsErrors(t *testing.T) {
	t.Parallel()

	bag := diag.NewBag(0)

	assert.False(t, bag.Add(diag.Errorf(diag.CodeDuplicateSymbol, "Red", "redefined")))
	assert.Equal(t, 0, bag.Len())
	assert.Equal(t, 1, bag.Dropped())
	assert.True(t, bag.HasErrors())

	assert.False(t, bag.Add(diag.Warningf(diag.CodeManifest, "", "ignored")))
	assert.Equal(t, 2, bag.Dropped())
}

func TestBagFullDroppedWarningsAreNotErrors(t *testing.T) {
	t.Parallel()

	bag := diag.NewBag(0)

	assert.False(t, bag.Add(diag.Warningf(diag.CodeManifest, "", "only a warning")))
	assert.Equal(t, 1, bag.Dropped())
	assert.False(t, bag.HasErrors())
}

func TestBagSortDeterministic(t *testing.T) {
	t.Parallel()

	bag := diag.NewBag(10)
	bag.Add(diag.Errorf(diag.CodeInvalidWidth, "12", "bad width"))
	bag.Add(diag.Errorf(diag.CodeDuplicateSymbol, "Zeta", "redefined"))
	bag.Add(diag.Errorf(diag.CodeDuplicateSymbol, "Alpha", "redefined"))

	bag.Sort()

	items := bag.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Alpha", items[0].Subject)
	assert.Equal(t, "Zeta", items[1].Subject)
	assert.Equal(t, diag.CodeInvalidWidth, items[2].Code)
}

func TestConsoleReporter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	reporter := diag.NewConsoleReporter(&sb, false)

	reporter.Report(diag.Errorf(diag.CodeDuplicateSymbol, "Red", "symbol redefined at position 2"))
	reporter.Report(diag.Infof(diag.CodeManifest, "", "1 enum generated"))

	out := sb.String()
	assert.Contains(t, out, "ERROR[1001] Red: symbol redefined at position 2")
	assert.Contains(t, out, "INFO[2001] 1 enum generated")
}

func TestCodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CodeDuplicateSymbol", diag.CodeDuplicateSymbol.String())
	assert.Equal(t, "CodeInvalidWidth", diag.CodeInvalidWidth.String())
	assert.Equal(t, "CodeWriteOutput", diag.CodeWriteOutput.String())
	assert.Equal(t, "CodeTooManyDiagnostics", diag.CodeTooManyDiagnostics.String())
	assert.Equal(t, "Code(1234)", diag.Code(1234).String())
}
