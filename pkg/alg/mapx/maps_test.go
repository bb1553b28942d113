package mapx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	t.Run("nil_returns_nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, SortedKeys[int, int](nil))
	})

	t.Run("empty_table_has_no_values", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, SortedKeys(map[int]int{}))
	})

	t.Run("ascending_numbers", func(t *testing.T) {
		t.Parallel()

		got := SortedKeys(map[float64]int{21: 1, 13: 4, 16: 1, 14: 2})
		assert.Equal(t, []float64{13, 14, 16, 21}, got)
	})

	t.Run("ascending_strings", func(t *testing.T) {
		t.Parallel()

		got := SortedKeys(map[string]bool{"c": true, "a": true, "b": false})
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})
}

func TestMaxValue(t *testing.T) {
	t.Parallel()

	t.Run("empty_map", func(t *testing.T) {
		t.Parallel()

		_, ok := MaxValue(map[int]int{})
		assert.False(t, ok)
	})

	t.Run("finds_largest", func(t *testing.T) {
		t.Parallel()

		got, ok := MaxValue(map[int]int{13: 4, 14: 2, 21: 1})
		assert.True(t, ok)
		assert.Equal(t, 4, got)
	})
}

func TestKeysWithValue(t *testing.T) {
	t.Parallel()

	m := map[int]int{1: 3, 3: 3, 4: 3, 6: 3, 9: 1}

	assert.Equal(t, []int{1, 3, 4, 6}, KeysWithValue(m, 3))
	assert.Equal(t, []int{9}, KeysWithValue(m, 1))
	assert.Empty(t, KeysWithValue(m, 7))
}
