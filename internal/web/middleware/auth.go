package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// AdminKey returns middleware that validates the X-Admin-Key header
// against the configured key. An empty configured key disables the
// check entirely, which is the expected mode for local single-user use.
func AdminKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-Admin-Key")
			if provided == "" {
				slog.Warn("auth: missing admin key",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"missing admin key","code":"AUTH_MISSING_KEY"}`, http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				slog.Warn("auth: invalid admin key",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"invalid admin key","code":"AUTH_INVALID_KEY"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
