package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as user-friendly messages
//   - Formatted appropriately for the client (JSON for API, HTML for pages)

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkarlsen/crimedash/internal/dataset"
	"github.com/mkarlsen/crimedash/internal/render"
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// userMessage is a sanitized, user-facing description of an error.
type userMessage struct {
	Code    string
	Message string
	Status  int
}

// mapError converts internal errors to user-facing messages and status
// codes. Unknown errors collapse to a generic internal message so no
// internals leak to clients.
func mapError(err error) userMessage {
	var missing *dataset.MissingFileError
	switch {
	case errors.As(err, &missing):
		return userMessage{
			Code:    "missing_file",
			Status:  http.StatusServiceUnavailable,
			Message: fmt.Sprintf("Data file %q was not found in %s.", missing.File, missing.Dir),
		}
	case errors.Is(err, dataset.ErrNotLoaded):
		return userMessage{
			Code:    "not_loaded",
			Status:  http.StatusServiceUnavailable,
			Message: "Data could not be loaded. Ensure the CSV files are present in the data directory.",
		}
	case errors.Is(err, dataset.ErrUnknownDataset):
		return userMessage{
			Code:    "unknown_dataset",
			Status:  http.StatusNotFound,
			Message: "No such dataset.",
		}
	case errors.Is(err, render.ErrZeroTotal):
		return userMessage{
			Code:    "zero_total",
			Status:  http.StatusOK,
			Message: "All values are zero; proportions are undefined.",
		}
	default:
		var parse *dataset.ParseError
		if errors.As(err, &parse) {
			return userMessage{
				Code:    "malformed_data",
				Status:  http.StatusServiceUnavailable,
				Message: "A data file is malformed and could not be loaded.",
			}
		}
		return userMessage{
			Code:    "internal",
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong.",
		}
	}
}

// respondError handles API error responses with user-friendly messages.
// It logs the technical error server-side with the request ID for
// correlation, then writes the sanitized JSON body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	msg := mapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", msg.Status,
		"error", err.Error(),
		"code", msg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(msg.Status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(msg.Status),
		Message: msg.Message,
		Code:    msg.Code,
	})
}

// writeError writes a minimal JSON error response. Used where no request
// context is available (middleware).
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, message)
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
