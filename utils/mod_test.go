package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertSorted(t *testing.T) {
	var s []int
	for _, v := range []int{9, 1, 6, 1, 39} {
		s = InsertSorted(s, v)
	}
	require.Equal(t, []int{1, 6, 9, 39}, s, "Duplicates are dropped")
}

func TestRemove(t *testing.T) {
	s := []int{1, 6, 9, 6}
	s = Remove(s, 6)
	require.Equal(t, []int{1, 9, 6}, s, "Only the first occurrence goes")
	require.Equal(t, []int{1, 9, 6}, Remove(s, 4))
	require.Equal(t, -1, FindIndex(s, 4))
	require.Equal(t, 1, FindIndex(s, 9))
}
