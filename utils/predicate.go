package utils

import "cmp"

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T cmp.Ordered](min T, value T, max T) bool {
	return min <= value && value <= max
}
