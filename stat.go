package dirindex

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// statConcurrency caps in-flight metadata lookups per listing.
const statConcurrency = 10

// Stat collects metadata for names inside dir. Results are positional:
// out[i] always describes names[i], whatever order the lookups finish in.
//
// An entry that vanishes between enumeration and stat gets a nil Meta. Any
// other lookup failure aborts the whole collection; partial listings are
// never returned.
func (s *Service) Stat(ctx context.Context, dir string, names []string) ([]Entry, error) {
	entries := make([]Entry, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info, err := s.cfg.Fs.Stat(filepath.Join(dir, name))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					entries[i] = Entry{Name: name}
					return nil
				}
				return fmt.Errorf("stat %s: %w", name, err)
			}

			entries[i] = Entry{
				Name: name,
				Meta: &FileMeta{
					Size:    info.Size(),
					ModTime: info.ModTime(),
					IsDir:   info.IsDir(),
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	return entries, nil
}
