package mapx

import "slices"

// CloneSlice detaches a sample from its caller's backing array, so later
// writes by the caller never show through. nil stays nil.
func CloneSlice[T any](items []T) []T {
	return slices.Clone(items)
}
