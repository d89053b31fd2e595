package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

// Chart geometry shared by all bar views.
const (
	barChartWidth  = 960
	barChartHeight = 480
)

// yAxisLabel is the fixed y-axis caption for every ranked bar view.
const yAxisLabel = "Number of Incidents"

// BarSVG writes a ranked bar chart for the display table as SVG.
//
// Bars appear in the order of dt.Rows, which Rank has already put in
// descending count order. The x-axis carries category names with no axis
// title; there is no legend. An empty table renders a valid empty-state
// frame rather than failing.
func BarSVG(w io.Writer, dt DisplayTable, title string) error {
	if len(dt.Rows) == 0 {
		return writeEmptySVG(w, barChartWidth, barChartHeight, title)
	}

	bars := make([]chart.Value, len(dt.Rows))
	for i, row := range dt.Rows {
		bars[i] = chart.Value{
			Label: row.Key,
			Value: float64(row.Value),
		}
	}

	ch := chart.BarChart{
		Title:      title,
		Width:      barChartWidth,
		Height:     barChartHeight,
		BarWidth:   barWidth(len(bars)),
		BarSpacing: 12,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 32},
		},
		XAxis: chart.Style{
			FontSize:            8,
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Name:           yAxisLabel,
			ValueFormatter: chart.IntValueFormatter,
			// The auto range has zero delta when every bar carries the
			// same count, which go-chart rejects. Pin it to [0, max].
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: math.Max(1, float64(dt.MaxValue)),
			},
		},
		Bars: bars,
	}

	return ch.Render(chart.SVG, w)
}

// barWidth fits n bars plus spacing into the fixed chart width.
func barWidth(n int) int {
	if n <= 0 {
		return 20
	}
	w := (barChartWidth - 80) / n
	w -= 12 // spacing
	if w < 14 {
		w = 14
	}
	if w > 60 {
		w = 60
	}
	return w
}

// EmptyChartSVG writes the shared empty-state frame. Used where a chart
// endpoint must still produce a valid image (zero-total proportions).
func EmptyChartSVG(w io.Writer, title string) error {
	return writeEmptySVG(w, donutWidth, donutHeight, title)
}

// writeEmptySVG emits a minimal chart frame for tables with no rows.
// Zero rows is a valid state, not an error.
func writeEmptySVG(w io.Writer, width, height int, title string) error {
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
		`<text x="50%%" y="28" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
		`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#6b7280">No data to display</text>`+
		`</svg>`,
		width, height, width, height, htmlEscape(title))
	return err
}

// htmlEscape covers the characters that matter inside SVG text nodes.
func htmlEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
