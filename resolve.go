package dirindex

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Resolve maps a raw, still-escaped request path onto the service root. It
// returns the resolved absolute path and whether the target sits below the
// root (and so may link to its parent).
//
// Resolve never touches the filesystem. Undecodable escapes and NUL bytes
// return ErrMalformedPath; resolved paths leaving the root return
// ErrOutsideRoot. Containment is checked on the final normalized string, so
// no sequence of dot segments can slip through.
func (s *Service) Resolve(rawPath string) (string, bool, error) {
	pathname, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", false, fmt.Errorf("resolve %q: %w", rawPath, ErrMalformedPath)
	}

	if strings.ContainsRune(pathname, '\x00') {
		return "", false, fmt.Errorf("resolve: %w: NUL byte in path", ErrMalformedPath)
	}

	path := filepath.Join(s.root, pathname)

	// Both sides carry a trailing separator so /srv/files never matches a
	// sibling like /srv/files-old.
	sep := string(filepath.Separator)
	if !strings.HasPrefix(path+sep, s.root) {
		return "", false, fmt.Errorf("resolve %q: %w", pathname, ErrOutsideRoot)
	}

	// Compare against the root without its trailing separator: the root
	// itself, the filesystem root included, has no parent to link.
	return path, path != filepath.Clean(s.root), nil
}
