// Package render turns loaded tables into ranked display tables and SVG
// charts. It is the only package that knows about chart geometry; the web
// and CLI frontends both sit on top of it.
package render

import (
	"sort"

	"github.com/mkarlsen/crimedash/internal/dataset"
)

// TopN is the fixed row cap for ranked bar views. It is deliberately not
// configurable per call: every bar view in the dashboard shows the same
// top-20 slice.
const TopN = 20

// DisplayTable is the ranked, truncated table backing a bar chart.
type DisplayTable struct {
	Rows []dataset.Row

	// MaxValue is the highest count in Rows, used by frontends to
	// highlight the leading category. Zero when Rows is empty.
	MaxValue int64

	// SourceRows is the row count before truncation.
	SourceRows int
}

// Truncated reports whether rows were dropped by the top-N cap.
func (dt DisplayTable) Truncated() bool {
	return dt.SourceRows > len(dt.Rows)
}

// Rank sorts a table by count descending and keeps the first n rows.
//
// Ties are broken by category name ascending so the result is fully
// deterministic regardless of source file order. Rows that share the cut
// value are kept or dropped by that same ordering.
func Rank(t dataset.Table, n int) DisplayTable {
	rows := make([]dataset.Row, len(t.Rows))
	copy(rows, t.Rows)

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Key < rows[j].Key
	})

	dt := DisplayTable{SourceRows: len(rows)}
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	dt.Rows = rows
	if len(rows) > 0 {
		dt.MaxValue = rows[0].Value
	}
	return dt
}
