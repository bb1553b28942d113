package freq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/freq"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

type tally struct {
	count int
}

var byCount = seq.Func(func(t tally) int { return t.count })

func tallies(values ...int) []tally {
	out := make([]tally, len(values))
	for i, v := range values {
		out[i] = tally{count: v}
	}

	return out
}

func TestFrequency(t *testing.T) {
	t.Parallel()

	t.Run("multi_element_sample", func(t *testing.T) {
		t.Parallel()

		table, err := freq.Frequency([]int{13, 18, 13, 14, 13, 16, 14, 21, 13}, seq.Identity[int])
		require.NoError(t, err)

		assert.Len(t, table, 5)
		assert.Equal(t, 4, table[13])
		assert.Equal(t, 2, table[14])
		assert.Equal(t, 1, table[16])
		assert.Equal(t, 1, table[18])
		assert.Equal(t, 1, table[21])
		assert.Equal(t, 9, table.Total())
		assert.Equal(t, 4, table.Max())
		assert.Equal(t, []int{13, 14, 16, 18, 21}, table.Values())
	})

	t.Run("with_extractor", func(t *testing.T) {
		t.Parallel()

		table, err := freq.Frequency(tallies(13, 18, 13, 14, 13, 16, 14, 21, 13), byCount)
		require.NoError(t, err)
		assert.Equal(t, freq.Table[int]{13: 4, 14: 2, 16: 1, 18: 1, 21: 1}, table)
	})

	t.Run("string_values", func(t *testing.T) {
		t.Parallel()

		table, err := freq.Frequency([]string{"M", "F", "M"}, seq.Identity[string])
		require.NoError(t, err)
		assert.Equal(t, freq.Table[string]{"M": 2, "F": 1}, table)
	})

	t.Run("empty_input", func(t *testing.T) {
		t.Parallel()

		_, err := freq.Frequency([]int{}, seq.Identity[int])
		require.ErrorIs(t, err, seq.ErrEmptyInput)
	})
}

func TestTable_Modes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 3, 4, 6}, freq.Count([]int{1, 1, 1, 3, 3, 3, 4, 4, 4, 6, 6, 6, 9}).Modes())
	assert.Equal(t, []int{7}, freq.Count([]int{7}).Modes())
	assert.Nil(t, freq.Table[int]{}.Modes())
}

func TestProbability(t *testing.T) {
	t.Parallel()

	t.Run("multi_element_sample", func(t *testing.T) {
		t.Parallel()

		dist, err := freq.Probability([]int{13, 18, 13, 14, 13, 16, 14, 21, 13}, seq.Identity[int])
		require.NoError(t, err)

		assert.Len(t, dist, 5)
		assert.InDelta(t, 0.444, dist[13], 0.01)
		assert.InDelta(t, 0.222, dist[14], 0.01)
		assert.InDelta(t, 0.111, dist[16], 0.01)
		assert.InDelta(t, 0.111, dist[18], 0.01)
		assert.InDelta(t, 0.111, dist[21], 0.01)
	})

	t.Run("with_extractor", func(t *testing.T) {
		t.Parallel()

		dist, err := freq.Probability(tallies(13, 18, 13, 14, 13, 16, 14, 21, 13), byCount)
		require.NoError(t, err)
		assert.InDelta(t, 4.0/9.0, dist[13], 1e-12)
		assert.Equal(t, []int{13, 14, 16, 18, 21}, dist.Values())
	})

	t.Run("sums_to_one", func(t *testing.T) {
		t.Parallel()

		samples := [][]float64{
			{1},
			{0.1, 0.2, 0.3},
			{5, 5, 5, 5, 5, 5, 5},
			{1, 2, 3, 4, 5, 6, 6, 6, 6, 6, 7.5, -2, -2},
		}

		for _, sample := range samples {
			dist, err := freq.Probability(sample, seq.Identity[float64])
			require.NoError(t, err)

			var sum float64
			for _, p := range dist {
				sum += p
			}

			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		t.Parallel()

		_, err := freq.Probability([]float64{}, seq.Identity[float64])
		require.ErrorIs(t, err, seq.ErrEmptyInput)
	})
}
