package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/afero"
	"github.com/srashe/dirindex"
)

// allowedMethods is the Allow header value for every method response.
const allowedMethods = "GET, HEAD, OPTIONS"

// Browser is the part of dirindex.Service the handler consumes.
type Browser interface {
	Browse(ctx context.Context, rawPath string) (*dirindex.Listing, error)
}

// Handler answers directory requests with a negotiated listing and defers
// everything else to a next handler.
type Handler struct {
	service Browser
	config  dirindex.Config
	next    http.Handler
}

// NewHandler builds a Handler around an existing Browser. config supplies
// the representation options; next receives requests for paths that are
// missing or not directories, and defaults to a plain 404 handler when nil.
func NewHandler(service Browser, config dirindex.Config, next http.Handler) *Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}
	if config.View == "" {
		config.View = dirindex.ViewTiles
	}
	return &Handler{
		service: service,
		config:  config,
		next:    next,
	}
}

// Middleware validates cfg and returns middleware rendering directory
// listings in front of next.
func Middleware(cfg dirindex.Config) (func(http.Handler) http.Handler, error) {
	svc, err := dirindex.NewService(cfg)
	if err != nil {
		return nil, fmt.Errorf("listing middleware: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return NewHandler(svc, svc.Config(), next)
	}, nil
}

// StandaloneHandler builds a listing handler that answers 404 for paths it
// cannot list, for callers that do not chain a next handler of their own.
func StandaloneHandler(cfg dirindex.Config) (http.Handler, error) {
	mw, err := Middleware(cfg)
	if err != nil {
		return nil, err
	}
	return mw(nil), nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status := http.StatusMethodNotAllowed
		if r.Method == http.MethodOptions {
			status = http.StatusOK
		}
		w.Header().Set("Allow", allowedMethods)
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(status)
		return
	}

	listing, err := h.service.Browse(r.Context(), r.URL.EscapedPath())
	if err != nil {
		h.handleBrowseError(w, r, err)
		return
	}

	contentType := negotiate(r.Header.Get("Accept"), offeredTypes)
	if contentType == "" {
		writeError(w, r, http.StatusNotAcceptable)
		return
	}

	render, ok := rendererFor(contentType)
	if !ok {
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	body, err := render(&RenderContext{
		Request:      r,
		Directory:    r.URL.Path,
		Path:         listing.Path,
		ShowParent:   listing.ShowParent,
		Names:        listing.Names,
		Entries:      listing.Entries,
		DisplayIcons: h.config.Icons,
		View:         h.config.View,
		Stylesheet:   h.config.Stylesheet,
		Template:     h.config.Template,
		TemplateFunc: h.config.TemplateFunc,
		Fs:           h.config.Fs,
	})
	if err != nil {
		h.logError(r, fmt.Errorf("render %s: %w", contentType, err))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	writeListing(w, contentType, body)
}
