package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsen/crimedash/internal/render"
)

// handleBarChart renders the ranked top-20 bar chart for a dataset as SVG.
// Charts are rendered into a buffer first so a render failure never leaks
// a half-written body to the client.
func (s *Server) handleBarChart(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, "datasetKey")

	table, err := s.store.Table(datasetKey)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	dt := render.Rank(table, render.TopN)

	var buf bytes.Buffer
	if err := render.BarSVG(&buf, dt, table.Label); err != nil {
		s.logChartError(r, datasetKey, err)
		writeEmptyChart(w, table.Label)
		return
	}
	writeSVG(w, &buf)
}

// handlePieChart renders the proportion donut chart for a dataset as SVG.
// A zero-total table gets the shared empty-state frame rather than an
// error, so <img> consumers always receive a valid image.
func (s *Server) handlePieChart(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, "datasetKey")

	table, err := s.store.Table(datasetKey)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.DonutSVG(&buf, table, table.Label); err != nil {
		if !errors.Is(err, render.ErrZeroTotal) {
			s.logChartError(r, datasetKey, err)
		}
		writeEmptyChart(w, table.Label)
		return
	}
	writeSVG(w, &buf)
}

// writeSVG sends a fully rendered chart body.
func writeSVG(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "image/svg+xml")
	buf.WriteTo(w)
}

// writeEmptyChart sends the empty-state frame in place of a chart.
func writeEmptyChart(w http.ResponseWriter, title string) {
	var buf bytes.Buffer
	if err := render.EmptyChartSVG(&buf, title); err != nil {
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}
	writeSVG(w, &buf)
}

func (s *Server) logChartError(r *http.Request, datasetKey string, err error) {
	logger := loggerFrom(r)
	logger.Error("chart render error", "dataset", datasetKey, "error", err)
}
