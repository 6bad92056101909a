// Package enumset derives the ordinal constant set and the index-aligned name
// table from a canonical list, and can emit both as Go source.
package enumset

import (
	"declgen/canon"
)

// Member is one generated enum member: Name at position Ordinal of the list.
type Member struct {
	Name    string
	Ordinal int
}

// Entry is one name table row. Len is the byte length of Name.
type Entry struct {
	Name string
	Len  int
}

// Set holds both derived artifacts. They are produced by the same iteration
// over the canonical list, so they cannot drift out of alignment.
type Set struct {
	members []Member
	table   []Entry
}

// Build derives the member set and the name table from list in a single pass.
func Build(list canon.List) Set {
	set := Set{
		members: make([]Member, list.Len()),
		table:   make([]Entry, list.Len()),
	}

	for i := 0; i < list.Len(); i++ {
		record := list.At(i)
		set.members[i] = Member{Name: record.Symbol, Ordinal: i}
		set.table[i] = Entry{Name: record.Display, Len: len(record.Display)}
	}

	return set
}

func (s Set) Len() int { return len(s.members) }

// Members returns the ordinal-indexed member set. Do not modify the result.
func (s Set) Members() []Member { return s.members }

// NameTable returns the name table, index-aligned with Members.
// Do not modify the result.
func (s Set) NameTable() []Entry { return s.table }
