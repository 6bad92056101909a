package options

type ArtifactEnum int

const (
	ArtifactConsts   ArtifactEnum = 1 << iota // const block: one constant per symbol, ordinal = list position
	ArtifactNames                             // name table: index-aligned array of display strings
	ArtifactStringer                          // String() method backed by the name table

	ArtifactAll  ArtifactEnum = (1 << iota) - 1 // all artifacts combined
	ArtifactNone ArtifactEnum = 0               // no artifacts selected
)

// Has reports whether every artifact in want is selected.
func (a ArtifactEnum) Has(want ArtifactEnum) bool {
	return a&want == want
}
