package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/crimedash/internal/dataset"
)

func tableOf(rows ...dataset.Row) dataset.Table {
	return dataset.Table{Key: "test", Label: "Test", Rows: rows}
}

func TestRank_SortsDescending(t *testing.T) {
	dt := Rank(tableOf(
		dataset.Row{Key: "low", Value: 1},
		dataset.Row{Key: "high", Value: 9},
		dataset.Row{Key: "mid", Value: 5},
	), TopN)

	assert.Equal(t, []dataset.Row{
		{Key: "high", Value: 9},
		{Key: "mid", Value: 5},
		{Key: "low", Value: 1},
	}, dt.Rows)
	assert.EqualValues(t, 9, dt.MaxValue)
	assert.False(t, dt.Truncated())
}

func TestRank_TopNInvariant(t *testing.T) {
	var rows []dataset.Row
	for v := 1; v <= 25; v++ {
		rows = append(rows, dataset.Row{Key: fmt.Sprintf("cat%02d", v), Value: int64(v)})
	}

	dt := Rank(tableOf(rows...), TopN)

	require.Len(t, dt.Rows, 20)
	assert.True(t, dt.Truncated())
	assert.Equal(t, 25, dt.SourceRows)

	// Values 25 down to 6, in order; every kept value >= every excluded
	// value (the excluded ones are 5..1).
	for i, row := range dt.Rows {
		assert.EqualValues(t, 25-i, row.Value)
	}
}

func TestRank_TiesSurviveTruncation(t *testing.T) {
	// Two rows share the maximum; both must appear.
	var rows []dataset.Row
	rows = append(rows,
		dataset.Row{Key: "zeta", Value: 100},
		dataset.Row{Key: "alpha", Value: 100},
	)
	for v := 1; v <= 20; v++ {
		rows = append(rows, dataset.Row{Key: fmt.Sprintf("cat%02d", v), Value: int64(v)})
	}

	dt := Rank(tableOf(rows...), TopN)

	require.Len(t, dt.Rows, 20)
	// Ties break by category name ascending.
	assert.Equal(t, dataset.Row{Key: "alpha", Value: 100}, dt.Rows[0])
	assert.Equal(t, dataset.Row{Key: "zeta", Value: 100}, dt.Rows[1])
}

func TestRank_DeterministicTieBreak(t *testing.T) {
	a := Rank(tableOf(
		dataset.Row{Key: "b", Value: 3},
		dataset.Row{Key: "a", Value: 3},
		dataset.Row{Key: "c", Value: 3},
	), TopN)
	b := Rank(tableOf(
		dataset.Row{Key: "c", Value: 3},
		dataset.Row{Key: "a", Value: 3},
		dataset.Row{Key: "b", Value: 3},
	), TopN)

	assert.Equal(t, a.Rows, b.Rows, "ranking must not depend on source order")
	assert.Equal(t, "a", a.Rows[0].Key)
}

func TestRank_EmptyTable(t *testing.T) {
	dt := Rank(tableOf(), TopN)

	assert.Empty(t, dt.Rows)
	assert.EqualValues(t, 0, dt.MaxValue)
	assert.False(t, dt.Truncated())
}

func TestRank_DoesNotMutateSource(t *testing.T) {
	table := tableOf(
		dataset.Row{Key: "low", Value: 1},
		dataset.Row{Key: "high", Value: 9},
	)

	Rank(table, TopN)

	assert.Equal(t, "low", table.Rows[0].Key, "source table order must be preserved")
}
