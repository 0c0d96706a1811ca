package core

import "cmp"

// LinearContains reports whether key occurs in items, scanning front to back.
// Complexity: O(n).
func LinearContains[T comparable](items []T, key T) bool {
	for _, it := range items {
		if it == key {
			return true
		}
	}

	return false
}

// BinaryContains reports whether key occurs in sorted, which must be in
// ascending order. Complexity: O(log n).
func BinaryContains[T cmp.Ordered](sorted []T, key T) bool {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case key < sorted[mid]:
			high = mid - 1
		case sorted[mid] < key:
			low = mid + 1
		default:
			return true
		}
	}

	return false
}
