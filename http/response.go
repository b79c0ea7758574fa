package http

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/srashe/dirindex"
)

// writeListing emits a rendered representation with an exact length and
// sniffing disabled.
func writeListing(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeError emits a refusal: the HTML error page when the client accepts
// HTML, minimal plain status text otherwise.
func writeError(w http.ResponseWriter, r *http.Request, status int) {
	if negotiate(r.Header.Get("Accept"), []string{contentTypeHTML}) == contentTypeHTML {
		writeErrorPage(w, status)
		return
	}

	body := http.StatusText(status)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// handleBrowseError maps the browse error taxonomy onto responses. Missing
// paths and regular files defer to the next handler; root escapes are
// logged as suspicious before the refusal.
func (h *Handler) handleBrowseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, dirindex.ErrNotDirectory):
		h.next.ServeHTTP(w, r)

	case errors.Is(err, dirindex.ErrMalformedPath):
		writeError(w, r, http.StatusBadRequest)

	case errors.Is(err, dirindex.ErrOutsideRoot):
		slog.Warn("request escapes listing root",
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"request_id", RequestID(r.Context()),
		)
		writeError(w, r, http.StatusForbidden)

	case errors.Is(err, dirindex.ErrPathTooLong):
		writeError(w, r, http.StatusRequestURITooLong)

	default:
		h.logError(r, err)
		writeError(w, r, http.StatusInternalServerError)
	}
}

func (h *Handler) logError(r *http.Request, err error) {
	slog.Error("listing request failed",
		"error", err,
		"path", r.URL.Path,
		"request_id", RequestID(r.Context()),
	)
}
