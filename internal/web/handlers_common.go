package web

import (
	"log/slog"
	"net/http"

	"github.com/mkarlsen/crimedash/internal/logging"
)

// loggerFrom returns a request-scoped structured logger.
func loggerFrom(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context())
}
