// Package dirindex renders browsable directory listings for HTTP servers.
//
// Dirindex maps request paths onto a fixed filesystem root, enumerates the
// target directory, collects entry metadata with bounded concurrency, and
// produces an ordered listing ready to render as HTML, plain text, or JSON.
// Requests for paths that do not exist, or that name regular files, are left
// to the next handler so the listing layer composes with static file serving.
//
// # Key Components
//
//   - Service: resolves request paths safely and browses directories
//   - Entry / FileMeta: listing entries with optional stat metadata
//   - SortEntries: display order (parent link, directories, locale-aware names)
//   - Classify: icon selection by extension, media type, suffix, and class
//   - Config: root, filters, representation options, filesystem capability
//
// # Path Safety
//
// Every request path is percent-decoded, joined with the root, and
// normalized before any filesystem access. Paths carrying NUL bytes are
// rejected as malformed, and any resolved path that leaves the root is
// rejected with ErrOutsideRoot. The containment check compares normalized
// paths with a trailing separator so a sibling of the root can never pass.
//
// # Example Usage
//
//	svc, err := dirindex.NewService(dirindex.Config{Root: "/srv/files"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	listing, err := svc.Browse(ctx, r.URL.EscapedPath())
//	if err != nil {
//	    // errors.Is(err, fs.ErrNotExist) etc.
//	}
//	for _, entry := range listing.Entries {
//	    fmt.Println(entry.Name)
//	}
//
// See the http package for the middleware that negotiates and renders the
// three representations, and the assets package for the built-in template,
// stylesheet, and icon set.
package dirindex
