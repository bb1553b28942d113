// Package freq builds frequency and probability tables over extracted values.
package freq

import (
	"cmp"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/mapx"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Table maps each distinct value to its number of occurrences.
type Table[V cmp.Ordered] map[V]int

// Distribution maps each distinct value to count/n; its values sum to 1.
type Distribution[V cmp.Ordered] map[V]float64

// Frequency counts the occurrences of each distinct extracted value.
func Frequency[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (Table[V], error) {
	if len(items) == 0 {
		return nil, seq.ErrEmptyInput
	}

	values, err := seq.Values(items, ext)
	if err != nil {
		return nil, err
	}

	return Count(values), nil
}

// Count builds a Table from already extracted values.
func Count[V cmp.Ordered](values []V) Table[V] {
	table := make(Table[V])

	for _, v := range values {
		table[v]++
	}

	return table
}

// Probability builds the probability mass function of the extracted values.
func Probability[T any, V cmp.Ordered](items []T, ext seq.Extractor[T, V]) (Distribution[V], error) {
	table, err := Frequency(items, ext)
	if err != nil {
		return nil, err
	}

	return table.Distribution(), nil
}

// Total returns the number of counted items.
func (t Table[V]) Total() int {
	total := 0

	for _, c := range t {
		total += c
	}

	return total
}

// Values returns the distinct values in ascending order.
func (t Table[V]) Values() []V {
	return mapx.SortedKeys(t)
}

// Max returns the highest count in the table, 0 for an empty table.
func (t Table[V]) Max() int {
	best, _ := mapx.MaxValue(t)

	return best
}

// Modes returns, ascending, every value whose count equals the highest count.
func (t Table[V]) Modes() []V {
	if len(t) == 0 {
		return nil
	}

	return mapx.KeysWithValue(t, t.Max())
}

// Distribution divides every count by the table total.
func (t Table[V]) Distribution() Distribution[V] {
	n := float64(t.Total())
	dist := make(Distribution[V], len(t))

	for v, c := range t {
		dist[v] = float64(c) / n
	}

	return dist
}

// Values returns the distinct values in ascending order.
func (d Distribution[V]) Values() []V {
	return mapx.SortedKeys(d)
}
