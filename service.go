package dirindex

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Service produces directory listings confined to a single root. A Service
// is immutable after construction and safe for concurrent use.
type Service struct {
	cfg  Config
	root string
}

// NewService validates cfg and builds a Service. The root is made absolute
// and normalized once here; every later resolution checks against it.
func NewService(cfg Config) (*Service, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("new service: root cannot be empty")
	}

	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}

	if cfg.View == "" {
		cfg.View = ViewTiles
	}
	if !cfg.View.IsValid() {
		return nil, fmt.Errorf("new service: invalid view: %s (valid views: tiles, details)", cfg.View)
	}

	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("new service: resolve root %s: %w", cfg.Root, err)
	}

	root := filepath.Clean(abs)
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}

	return &Service{cfg: cfg, root: root}, nil
}

// Root returns the normalized root path, trailing separator included.
func (s *Service) Root() string {
	return s.root
}

// Config returns the normalized configuration the Service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// Browse resolves rawPath against the root and lists the directory it names.
// The returned listing carries the filtered names in lexicographic order and
// the same entries with metadata in display order.
//
// Errors surface the resolution and listing taxonomy unchanged: callers can
// test with errors.Is for ErrMalformedPath, ErrOutsideRoot, fs.ErrNotExist,
// ErrNotDirectory, and ErrPathTooLong.
func (s *Service) Browse(ctx context.Context, rawPath string) (*Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	path, showParent, err := s.Resolve(rawPath)
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	names, err := s.List(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	entries, err := s.Stat(ctx, path, names)
	if err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	SortEntries(sorted)

	return &Listing{
		Path:       path,
		ShowParent: showParent,
		Names:      names,
		Entries:    sorted,
	}, nil
}
