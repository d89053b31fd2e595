package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/mkarlsen/crimedash/internal/dataset"
)

// ErrZeroTotal is returned when every value in a proportion chart is
// zero, which leaves the percentages undefined. Frontends show an
// empty-state panel instead of a chart.
var ErrZeroTotal = errors.New("render: proportions undefined, all values are zero")

const (
	donutWidth  = 560
	donutHeight = 420
)

// Slice is one proportion-chart segment.
type Slice struct {
	Key     string
	Value   int64
	Percent float64 // share of the total, 0-100
}

// Proportions computes one slice per table row with its percentage of the
// total. Unlike bar views there is no truncation: the proportion datasets
// are low-cardinality by construction. Returns ErrZeroTotal when the
// table is empty or sums to zero.
func Proportions(t dataset.Table) ([]Slice, error) {
	total := t.Total()
	if total == 0 {
		return nil, ErrZeroTotal
	}

	slices := make([]Slice, len(t.Rows))
	for i, row := range t.Rows {
		slices[i] = Slice{
			Key:     row.Key,
			Value:   row.Value,
			Percent: 100 * float64(row.Value) / float64(total),
		}
	}
	return slices, nil
}

// DonutSVG writes a proportion chart for the table as SVG. The central
// hole is cosmetic only. Each slice is labeled with its category name and
// percentage.
func DonutSVG(w io.Writer, t dataset.Table, title string) error {
	slices, err := Proportions(t)
	if err != nil {
		return err
	}

	values := make([]chart.Value, len(slices))
	for i, s := range slices {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Key, s.Percent),
			Value: float64(s.Value),
		}
	}

	ch := chart.DonutChart{
		Title:  title,
		Width:  donutWidth,
		Height: donutHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Values: values,
	}

	return ch.Render(chart.SVG, w)
}
