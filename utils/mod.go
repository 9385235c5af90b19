package utils

import (
	"cmp"

	"golang.org/x/exp/slices"
)

func FindIndex[T comparable](slice []T, item T) int {
	return slices.Index(slice, item)
}

// InsertSorted adds item to an ascending slice, keeping it sorted and free of duplicates.
func InsertSorted[T cmp.Ordered](slice []T, item T) []T {
	i, found := slices.BinarySearch(slice, item)
	if found {
		return slice
	}
	return slices.Insert(slice, i, item)
}

// Remove deletes the first occurrence of item, preserving order.
func Remove[T comparable](slice []T, item T) []T {
	i := slices.Index(slice, item)
	if i < 0 {
		return slice
	}
	return slices.Delete(slice, i, i+1)
}
