package diag

//go:generate go tool stringer -type=Code -output=code_string.go

// Code is a stable numeric diagnostic code. The 1xxx range covers
// definition-time failures in the generation core, the 2xxx range covers
// manifest and tooling failures.
type Code uint16

const (
	CodeDuplicateSymbol Code = 1001
	CodeInvalidSymbol   Code = 1002
	CodeEmptyList       Code = 1003
	CodeUndefinedArity  Code = 1004
	CodeInvalidWidth    Code = 1005

	CodeManifest           Code = 2001
	CodeGenerate           Code = 2002
	CodeWriteOutput        Code = 2003
	CodeTooManyDiagnostics Code = 2004
)
