package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsen/crimedash/internal/dataset"
	"github.com/mkarlsen/crimedash/internal/render"
)

// navItem is one sidebar menu entry.
type navItem struct {
	Key    string
	Label  string
	Active bool
}

// chartSection is one chart-plus-table block on a view page.
type chartSection struct {
	Heading    string
	ChartURL   string
	Half       bool   // rendered in a two-column row (demographics bars)
	Note       string // shown instead of the chart when non-empty
	Rows       []dataset.Row
	MaxValue   int64
	Highlight  bool // highlight the max count in the table
	Truncated  bool
	SourceRows int
}

// viewPage is the data for the view template.
type viewPage struct {
	Title    string
	Nav      []navItem
	Blurb    string
	Sections []chartSection
}

// errorPage is the data for the blocking data-unavailable template.
type errorPage struct {
	Title   string
	Nav     []navItem
	Message string
}

// buildNav returns the sidebar entries with the active view marked.
func buildNav(activeKey string) []navItem {
	views := dataset.Views()
	nav := make([]navItem, len(views))
	for i, v := range views {
		nav[i] = navItem{Key: v.Key, Label: v.Label, Active: v.Key == activeKey}
	}
	return nav
}

// handleIndex renders the first view, mirroring the default sidebar
// selection.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	views := dataset.Views()
	s.renderView(w, r, views[0])
}

// handleView renders a full page for one sidebar selection.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	viewKey := chi.URLParam(r, "viewKey")
	view, ok := dataset.ViewByKey(viewKey)
	if !ok {
		renderPage(w, http.StatusNotFound, "unavailable.html", errorPage{
			Title:   "Not Found",
			Nav:     buildNav(""),
			Message: "No such view.",
		})
		return
	}
	s.renderView(w, r, view)
}

// renderView assembles the chart sections for a view and renders the page.
// When no snapshot is available the page degrades to a blocking warning
// naming the missing file; no charts are rendered.
func (s *Server) renderView(w http.ResponseWriter, r *http.Request, view dataset.View) {
	snap, err := s.store.Snapshot()
	if err != nil {
		msg := mapError(err)
		renderPage(w, msg.Status, "unavailable.html", errorPage{
			Title:   view.Label,
			Nav:     buildNav(view.Key),
			Message: msg.Message,
		})
		return
	}

	var sections []chartSection
	for _, barKey := range view.Bars {
		table, ok := snap.Table(barKey)
		if !ok {
			s.respondError(w, r, dataset.ErrUnknownDataset)
			return
		}

		dt := render.Rank(table, render.TopN)
		sec := chartSection{
			Heading:    table.Label,
			ChartURL:   "/chart/" + barKey + "/bar.svg",
			Half:       len(view.Bars) > 1,
			Rows:       dt.Rows,
			MaxValue:   dt.MaxValue,
			Highlight:  true,
			Truncated:  dt.Truncated(),
			SourceRows: dt.SourceRows,
		}
		if len(dt.Rows) == 0 {
			sec.Note = "No data to display."
			sec.ChartURL = ""
		}
		sections = append(sections, sec)
	}

	if view.Pie != "" {
		table, ok := snap.Table(view.Pie)
		if !ok {
			s.respondError(w, r, dataset.ErrUnknownDataset)
			return
		}

		sec := chartSection{
			Heading:  table.Label,
			ChartURL: "/chart/" + view.Pie + "/pie.svg",
			Rows:     table.Rows,
		}
		if table.Total() == 0 {
			sec.Note = "All values are zero; proportions are undefined."
			sec.ChartURL = ""
		}
		sections = append(sections, sec)
	}

	renderPage(w, http.StatusOK, "view.html", viewPage{
		Title:    view.Label,
		Nav:      buildNav(view.Key),
		Blurb:    view.Blurb,
		Sections: sections,
	})
}
