package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/crimedash/internal/dataset"
)

func TestProportions_OneSlicePerRow(t *testing.T) {
	table := tableOf(
		dataset.Row{Key: "Male", Value: 10},
		dataset.Row{Key: "Female", Value: 8},
		dataset.Row{Key: "Unknown", Value: 2},
	)

	slices, err := Proportions(table)
	require.NoError(t, err)
	require.Len(t, slices, len(table.Rows))

	var sum float64
	for _, s := range slices {
		sum += s.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)

	assert.InDelta(t, 50.0, slices[0].Percent, 1e-9)
	assert.InDelta(t, 40.0, slices[1].Percent, 1e-9)
	assert.InDelta(t, 10.0, slices[2].Percent, 1e-9)
}

func TestProportions_PercentSumWithRoundingPressure(t *testing.T) {
	// Three equal thirds never sum to exactly 100 in decimal; the float
	// sum must still be within rounding distance.
	table := tableOf(
		dataset.Row{Key: "a", Value: 1},
		dataset.Row{Key: "b", Value: 1},
		dataset.Row{Key: "c", Value: 1},
	)

	slices, err := Proportions(table)
	require.NoError(t, err)

	var sum float64
	for _, s := range slices {
		sum += s.Percent
	}
	assert.True(t, math.Abs(sum-100.0) < 1e-9)
}

func TestProportions_ZeroTotal(t *testing.T) {
	table := tableOf(
		dataset.Row{Key: "Male", Value: 0},
		dataset.Row{Key: "Female", Value: 0},
	)

	_, err := Proportions(table)
	require.ErrorIs(t, err, ErrZeroTotal)
}

func TestProportions_EmptyTable(t *testing.T) {
	_, err := Proportions(tableOf())
	require.ErrorIs(t, err, ErrZeroTotal)
}

func TestDonutSVG_LabelsWithPercentages(t *testing.T) {
	table := tableOf(
		dataset.Row{Key: "Male", Value: 5},
		dataset.Row{Key: "Female", Value: 5},
	)

	var buf bytes.Buffer
	require.NoError(t, DonutSVG(&buf, table, "Victim Sex Distribution"))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Male (50.0%)")
	assert.Contains(t, out, "Female (50.0%)")
}

func TestDonutSVG_ZeroTotal(t *testing.T) {
	table := tableOf(dataset.Row{Key: "Male", Value: 0})

	var buf bytes.Buffer
	err := DonutSVG(&buf, table, "Victim Sex Distribution")
	require.ErrorIs(t, err, ErrZeroTotal)
	assert.Zero(t, buf.Len(), "nothing may be written on error")
}
