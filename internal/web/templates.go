package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFiles embed.FS

// pageTemplates holds all parsed page templates, keyed by file name.
var pageTemplates = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"comma": humanize.Comma,
		}).
		ParseFS(templateFiles, "templates/*.html"),
)

// renderPage executes a page template with the given status code.
// Template failures after headers are sent can only be logged.
func renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render error", "template", name, "error", err)
	}
}
