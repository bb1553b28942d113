package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/search"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

type entry struct {
	count int
	label string
}

var byCount = seq.Func(func(e entry) int { return e.count })

var errUnreadable = errors.New("unreadable")

func searchSample() []int {
	return []int{3, 5, 6, 7, 8, 11, 15, 21, 22, 28, 30, 32, 33, 34, 40}
}

func TestInsertionSort(t *testing.T) {
	t.Parallel()

	t.Run("sorts_in_place", func(t *testing.T) {
		t.Parallel()

		sample := []int{31, 37, 26, 30, 2, 30, 1, 33, 5, 14, 11, 13, 17, 35, 4}
		count := len(sample)

		sorted, err := search.InsertionSort(sample, seq.Identity[int])
		require.NoError(t, err)

		ascending, err := search.Ascending(sorted, seq.Identity[int])
		require.NoError(t, err)
		assert.True(t, ascending)
		assert.Len(t, sorted, count)
		assert.Equal(t, []int{1, 2, 4, 5, 11, 13, 14, 17, 26, 30, 30, 31, 33, 35, 37}, sample)
	})

	t.Run("with_extractor", func(t *testing.T) {
		t.Parallel()

		sample := []entry{{count: 31}, {count: 37}, {count: 26}, {count: 30}, {count: 2}, {count: 30}, {count: 1}}

		sorted, err := search.InsertionSort(sample, byCount)
		require.NoError(t, err)

		ascending, err := search.Ascending(sorted, byCount)
		require.NoError(t, err)
		assert.True(t, ascending)
		assert.Len(t, sorted, 7)
	})

	t.Run("stable_for_equal_keys", func(t *testing.T) {
		t.Parallel()

		sample := []entry{
			{count: 2, label: "first"},
			{count: 1, label: "a"},
			{count: 2, label: "second"},
			{count: 1, label: "b"},
			{count: 2, label: "third"},
		}

		sorted, err := search.InsertionSort(sample, byCount)
		require.NoError(t, err)

		labels := make([]string, 0, len(sorted))
		for _, e := range sorted {
			labels = append(labels, e.label)
		}

		assert.Equal(t, []string{"a", "b", "first", "second", "third"}, labels)
	})

	t.Run("empty_and_singleton", func(t *testing.T) {
		t.Parallel()

		empty, err := search.InsertionSort([]int{}, seq.Identity[int])
		require.NoError(t, err)
		assert.Empty(t, empty)

		single, err := search.InsertionSort([]int{9}, seq.Identity[int])
		require.NoError(t, err)
		assert.Equal(t, []int{9}, single)
	})

	t.Run("extraction_failure_leaves_input", func(t *testing.T) {
		t.Parallel()

		sample := []entry{{count: 3}, {count: -1}, {count: 1}}
		ext := func(e entry) (int, error) {
			if e.count < 0 {
				return 0, errUnreadable
			}

			return e.count, nil
		}

		_, err := search.InsertionSort(sample, ext)
		require.ErrorIs(t, err, seq.ErrExtraction)
		assert.Equal(t, 3, sample[0].count)
	})
}

func TestSorted(t *testing.T) {
	t.Parallel()

	sample := []int{5, 3, 9, 1}

	sorted, err := search.Sorted(sample, seq.Identity[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 9}, sorted)
	assert.Equal(t, []int{5, 3, 9, 1}, sample)
}

func TestSortedWithKeys(t *testing.T) {
	t.Parallel()

	sample := []entry{{count: 40}, {count: 15}, {count: 35}}

	sorted, keys, err := search.SortedWithKeys(sample, byCount)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 35, 40}, keys)
	assert.Equal(t, 15, sorted[0].count)
	assert.Equal(t, 40, sample[0].count)
}

func TestSortedValues(t *testing.T) {
	t.Parallel()

	got, err := search.SortedValues([]entry{{count: 4}, {count: 2}, {count: 3}}, byCount)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestAscendingDescending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      []int
		ascending  bool
		descending bool
	}{
		{name: "ascending", input: []int{1, 2, 3, 4}, ascending: true},
		{name: "descending", input: []int{4, 3, 2, 1}, descending: true},
		{name: "unordered", input: []int{1, 3, 2, 4}},
		{name: "plateau", input: []int{2, 2, 2}, ascending: true, descending: true},
		{name: "empty", input: []int{}, ascending: true, descending: true},
		{name: "singleton", input: []int{7}, ascending: true, descending: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			asc, err := search.Ascending(tt.input, seq.Identity[int])
			require.NoError(t, err)
			assert.Equal(t, tt.ascending, asc)

			desc, err := search.Descending(tt.input, seq.Identity[int])
			require.NoError(t, err)
			assert.Equal(t, tt.descending, desc)
		})
	}
}

func TestLinearSearch(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		idx, err := search.LinearSearch(searchSample(), 11, seq.Identity[int])
		require.NoError(t, err)
		assert.Equal(t, 5, idx)
	})

	t.Run("with_extractor", func(t *testing.T) {
		t.Parallel()

		sample := []entry{{count: 11}, {count: 12}, {count: 13}, {count: 14}, {count: 16}}

		idx, err := search.LinearSearch(sample, 14, byCount)
		require.NoError(t, err)
		assert.Equal(t, 3, idx)
	})

	t.Run("first_of_duplicates", func(t *testing.T) {
		t.Parallel()

		idx, err := search.LinearSearch([]int{4, 7, 7, 7}, 7, seq.Identity[int])
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		idx, err := search.LinearSearch(searchSample(), 12, seq.Identity[int])
		require.NoError(t, err)
		assert.Equal(t, search.NotFound, idx)
	})

	t.Run("stops_at_match", func(t *testing.T) {
		t.Parallel()

		ext := func(v int) (int, error) {
			if v < 0 {
				return 0, errUnreadable
			}

			return v, nil
		}

		idx, err := search.LinearSearch([]int{1, 2, -5}, 2, ext)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	})
}

func TestBinarySearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []int
		value     int
		wantRange search.Range
		wantFound bool
	}{
		{name: "single_match", input: searchSample(), value: 11, wantRange: search.Range{Low: 5, High: 5}, wantFound: true},
		{name: "first_element", input: searchSample(), value: 3, wantRange: search.Range{Low: 0, High: 0}, wantFound: true},
		{name: "last_element", input: searchSample(), value: 40, wantRange: search.Range{Low: 14, High: 14}, wantFound: true},
		{name: "duplicate_run", input: []int{1, 2, 2, 2, 5}, value: 2, wantRange: search.Range{Low: 1, High: 3}, wantFound: true},
		{name: "absent_middle", input: searchSample(), value: 12, wantRange: search.Range{Low: 5, High: 6}},
		{name: "absent_below", input: searchSample(), value: 1, wantRange: search.Range{Low: -1, High: 0}},
		{name: "absent_above", input: searchSample(), value: 41, wantRange: search.Range{Low: 14, High: 15}},
		{name: "empty", input: []int{}, value: 1, wantRange: search.Range{Low: -1, High: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found, err := search.BinarySearch(tt.input, tt.value, seq.Identity[int])
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantRange, got)
		})
	}
}

func TestBinarySearch_WithExtractor(t *testing.T) {
	t.Parallel()

	sample := []entry{
		{count: 11}, {count: 12}, {count: 13}, {count: 14}, {count: 16},
		{count: 17}, {count: 18}, {count: 19}, {count: 20}, {count: 21},
	}

	got, found, err := search.BinarySearch(sample, 14, byCount)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, search.Range{Low: 3, High: 3}, got)
}

func TestBinarySearchChecked(t *testing.T) {
	t.Parallel()

	t.Run("sorted_input", func(t *testing.T) {
		t.Parallel()

		got, found, err := search.BinarySearchChecked(searchSample(), 30, seq.Identity[int])
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, search.Range{Low: 10, High: 10}, got)
	})

	t.Run("unsorted_input", func(t *testing.T) {
		t.Parallel()

		_, found, err := search.BinarySearchChecked([]int{5, 1, 4}, 4, seq.Identity[int])
		require.ErrorIs(t, err, seq.ErrPrecondition)
		assert.False(t, found)
	})
}
