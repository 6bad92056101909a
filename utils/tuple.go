package utils

// Unpack2 splits a slice into its first two elements, zero-filling whatever
// is missing. Handy for strings.SplitN(..., 2) results.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}
