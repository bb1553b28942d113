// Package report renders a sample Summary and percentile assignments for
// humans (tables, a one-line digest) and machines (JSON, YAML).
package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/rank"
	"github.com/Sumatoshi-tech/seqstat/pkg/sample"
)

// Decimals is the number of fractional digits shown for statistics.
const Decimals = 3

// Table renders every statistic of s as a two-column table.
func Table(s sample.Summary) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"statistic", "value"})

	for _, row := range rows(s) {
		tbl.AppendRow(table.Row{row.name, row.value})
	}

	return tbl.Render()
}

// Line renders the headline statistics of s on a single line with
// highlighted keys. Color follows the terminal detection of fatih/color.
func Line(s sample.Summary) string {
	return line(s, color.New(color.FgCyan))
}

// Percentiles renders a percentile assignment in ascending order.
func Percentiles[T any, V cmp.Ordered](a rank.Assignment[T, V]) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "value", "percentile"})

	for i, e := range a {
		tbl.AppendRow(table.Row{i + 1, fmt.Sprintf("%v", e.Value), Number(e.Percentile)})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d items", len(a))})

	return tbl.Render()
}

// JSON serializes s.
func JSON(s sample.Summary) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary to JSON: %w", err)
	}

	return data, nil
}

// YAML serializes s.
func YAML(s sample.Summary) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary to YAML: %w", err)
	}

	return data, nil
}

// Number formats f rounded to Decimals digits, with thousands separators.
func Number(f float64) string {
	scale := math.Pow10(Decimals)

	return humanize.Commaf(math.Round(f*scale) / scale)
}

type row struct {
	name  string
	value string
}

func rows(s sample.Summary) []row {
	out := []row{
		{"count", humanize.Comma(int64(s.Count))},
		{"min", Number(s.Min)},
		{"max", Number(s.Max)},
		{"range", Number(s.Range)},
		{"midrange", Number(s.Midrange)},
		{"mean", Number(s.Mean)},
		{"trimmed mean (" + Number(s.TrimPercent) + "%)", Number(s.TrimmedMean)},
		{"median", Number(s.Median)},
		{"mode", numbers(s.Modes)},
		{"variance", Number(s.Variance)},
		{"stddev", Number(s.StdDev)},
	}

	for _, q := range s.Quantiles {
		out = append(out, row{"p" + strconv.FormatFloat(q.Percentile, 'f', -1, 64), Number(q.Value)})
	}

	return out
}

func line(s sample.Summary, key *color.Color) string {
	fields := []row{
		{"n", humanize.Comma(int64(s.Count))},
		{"mean", Number(s.Mean)},
		{"median", Number(s.Median)},
		{"stddev", Number(s.StdDev)},
		{"min", Number(s.Min)},
		{"max", Number(s.Max)},
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = key.Sprint(f.name) + "=" + f.value
	}

	return strings.Join(parts, " ")
}

func numbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Number(v)
	}

	return strings.Join(parts, ", ")
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}
