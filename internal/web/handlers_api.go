package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsen/crimedash/internal/dataset"
	"github.com/mkarlsen/crimedash/internal/render"
)

// viewJSON is the API representation of a sidebar view.
type viewJSON struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Blurb    string   `json:"blurb"`
	Datasets []string `json:"datasets"`
}

// datasetJSON is the API representation of one loaded table.
type datasetJSON struct {
	Key        string        `json:"key"`
	Label      string        `json:"label"`
	Shape      string        `json:"shape"`
	Rows       []dataset.Row `json:"rows"`
	Total      int64         `json:"total"`
	SourceRows int           `json:"source_rows"`
	Truncated  bool          `json:"truncated"`
}

// handleListViews returns the sidebar menu as JSON.
func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	views := dataset.Views()
	out := make([]viewJSON, len(views))
	for i, v := range views {
		out[i] = viewJSON{
			Key:      v.Key,
			Label:    v.Label,
			Blurb:    v.Blurb,
			Datasets: v.DatasetKeys(),
		}
	}
	writeJSON(w, out)
}

// handleDataset returns one table as JSON. Flat datasets are returned
// ranked and capped at the top 20, matching the bar views; wide (sex)
// datasets are returned whole, matching the proportion views.
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	datasetKey := chi.URLParam(r, "datasetKey")

	src, ok := dataset.Get(datasetKey)
	if !ok {
		s.respondError(w, r, dataset.ErrUnknownDataset)
		return
	}

	table, err := s.store.Table(datasetKey)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	out := datasetJSON{
		Key:        table.Key,
		Label:      table.Label,
		Shape:      src.Shape.String(),
		Total:      table.Total(),
		SourceRows: len(table.Rows),
	}

	if src.Shape == dataset.ShapeWide {
		out.Rows = table.Rows
	} else {
		dt := render.Rank(table, render.TopN)
		out.Rows = dt.Rows
		out.Truncated = dt.Truncated()
	}

	writeJSON(w, out)
}

// handleHealthz reports the load state of the dataset store.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Snapshot()
	if err != nil {
		msg := mapError(err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, map[string]any{
			"status":  "unavailable",
			"code":    msg.Code,
			"message": msg.Message,
		})
		return
	}

	writeJSON(w, map[string]any{
		"status":       "ok",
		"snapshot_id":  snap.ID.String(),
		"loaded_at":    snap.LoadedAt.Format(time.RFC3339),
		"datasets":     snap.Len(),
		"dataset_keys": snap.Keys(),
	})
}

// handleReload re-runs the loader and swaps the snapshot on success.
// On failure the previous snapshot keeps serving and the error is
// returned to the caller.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	if err := s.store.Load(r.Context()); err != nil {
		logger.Error("reload failed", "error", err)
		s.respondError(w, r, err)
		return
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logger.Info("datasets reloaded",
		"snapshot_id", snap.ID.String(),
		"datasets", snap.Len(),
	)
	writeJSON(w, map[string]any{
		"status":      "ok",
		"snapshot_id": snap.ID.String(),
		"datasets":    snap.Len(),
	})
}
