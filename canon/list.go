// Package canon holds the canonical record list that drives enum generation.
//
// A List is the single source of truth: both the ordinal constant set and the
// name table are derived from it in one pass, so a single edit to the list
// updates every generated artifact consistently.
package canon

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	ErrEmptyList     = errors.New("canonical list must contain at least one record")
	ErrInvalidSymbol = errors.New("symbol is not a valid Go identifier")
)

// RedefinitionError reports a duplicate symbol in a canonical list.
type RedefinitionError struct {
	Symbol string
	First  int // position of the original definition
	Again  int // position of the redefinition
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("symbol %q redefined at position %d (first defined at %d)", e.Symbol, e.Again, e.First)
}

// Record is one canonical entry: Symbol names the generated constant, Display
// is the human-readable name placed into the name table.
type Record struct {
	Symbol  string
	Display string
}

// List is an ordered, duplicate-free sequence of records. Immutable once built.
type List struct {
	records []Record
	index   map[string]int
}

// New builds a List where each display name equals its symbol.
func New(symbols ...string) (List, error) {
	records := make([]Record, 0, len(symbols))
	for _, symbol := range symbols {
		records = append(records, Record{Symbol: symbol, Display: symbol})
	}

	return NewRecords(records...)
}

// NewRecords builds a List from explicit records. An empty Display defaults to
// the Symbol. Symbols must be unique valid Go identifiers; displays may repeat.
func NewRecords(records ...Record) (List, error) {
	if len(records) == 0 {
		return List{}, ErrEmptyList
	}

	list := List{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}

	for i, record := range records {
		if !token.IsIdentifier(record.Symbol) {
			return List{}, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, record.Symbol, i)
		}

		if first, exists := list.index[record.Symbol]; exists {
			return List{}, &RedefinitionError{Symbol: record.Symbol, First: first, Again: i}
		}

		if record.Display == "" {
			record.Display = record.Symbol
		}

		list.index[record.Symbol] = i
		list.records = append(list.records, record)
	}

	return list, nil
}

// MustNew is New for package-level definition sites, where a bad list must
// prevent the program from starting at all.
func MustNew(symbols ...string) List {
	list, err := New(symbols...)
	if err != nil {
		panic(err)
	}

	return list
}

func (l List) Len() int { return len(l.records) }

func (l List) At(i int) Record { return l.records[i] }

// Index returns the ordinal of symbol, or false if it is not in the list.
func (l List) Index(symbol string) (int, bool) {
	i, ok := l.index[symbol]
	return i, ok
}

// Symbols returns the symbols in canonical order. The slice is a copy.
func (l List) Symbols() []string {
	symbols := make([]string, len(l.records))
	for i, record := range l.records {
		symbols[i] = record.Symbol
	}

	return symbols
}
