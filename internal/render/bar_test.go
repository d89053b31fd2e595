package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/crimedash/internal/dataset"
)

func TestBarSVG_WritesChart(t *testing.T) {
	dt := Rank(tableOf(
		dataset.Row{Key: "Handgun", Value: 12},
		dataset.Row{Key: "Knife", Value: 7},
	), TopN)

	var buf bytes.Buffer
	require.NoError(t, BarSVG(&buf, dt, "Weapon Types in Offenses"))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, yAxisLabel)
	assert.Contains(t, out, "Handgun")
}

func TestBarSVG_EqualValues(t *testing.T) {
	// A flat y-range must not break rendering.
	dt := Rank(tableOf(
		dataset.Row{Key: "Handgun", Value: 5},
		dataset.Row{Key: "Knife", Value: 5},
	), TopN)

	var buf bytes.Buffer
	require.NoError(t, BarSVG(&buf, dt, "Weapon Types in Offenses"))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Handgun")
	assert.Contains(t, out, "Knife")
}

func TestBarSVG_AllZeroValues(t *testing.T) {
	// Zero counts are valid data; bars are flat but the frame renders.
	dt := Rank(tableOf(
		dataset.Row{Key: "Handgun", Value: 0},
		dataset.Row{Key: "Knife", Value: 0},
	), TopN)

	var buf bytes.Buffer
	require.NoError(t, BarSVG(&buf, dt, "Weapon Types in Offenses"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestBarSVG_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BarSVG(&buf, Rank(tableOf(), TopN), "Empty"))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "No data to display")
	assert.Contains(t, out, "Empty")
}

func TestEmptyChartSVG_EscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmptyChartSVG(&buf, "A <& B"))

	out := buf.String()
	assert.Contains(t, out, "A &lt;&amp; B")
	assert.False(t, strings.Contains(out, "<&"), "raw markup must not leak into SVG text")
}

func TestBarWidth_Bounds(t *testing.T) {
	assert.Equal(t, 20, barWidth(0))
	assert.Equal(t, 60, barWidth(1), "single bars are capped")
	assert.Equal(t, 14, barWidth(200), "many bars hit the floor")
	assert.GreaterOrEqual(t, barWidth(20), 14)
}
