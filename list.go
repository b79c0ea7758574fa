package dirindex

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"syscall"
)

// List enumerates the directory at path and returns the entry names that
// survive filtering, sorted lexicographically.
//
// Missing paths return fs.ErrNotExist and regular files return
// ErrNotDirectory, both meant for callers to fall through to another
// handler. Over-length paths return ErrPathTooLong. Hidden entries (dot
// prefix) are dropped unless the service is configured to keep them, then
// the configured Filter runs against the remaining candidates.
func (s *Service) List(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	info, err := s.cfg.Fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, classifyPathError(err))
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list %s: %w", path, ErrNotDirectory)
	}

	f, err := s.cfg.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, classifyPathError(err))
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("list %s: read directory: %w", path, err)
	}

	if !s.cfg.Hidden {
		names = removeHidden(names)
	}

	if s.cfg.Filter != nil {
		filtered := make([]string, 0, len(names))
		for i, name := range names {
			if s.cfg.Filter(name, i, names, path) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	sort.Strings(names)

	return names, nil
}

func removeHidden(names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, ".") {
			kept = append(kept, name)
		}
	}
	return kept
}

// classifyPathError folds over-length path faults into ErrPathTooLong and
// leaves everything else, fs.ErrNotExist included, unchanged.
func classifyPathError(err error) error {
	if errors.Is(err, syscall.ENAMETOOLONG) {
		return fmt.Errorf("%w: %v", ErrPathTooLong, err)
	}
	return err
}
