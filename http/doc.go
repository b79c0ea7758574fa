// Package http serves browsable directory listings over HTTP.
//
// The package wraps the dirindex core as middleware: requests that resolve
// to a directory under the configured root are answered with a listing, and
// everything else falls through to the next handler, so the middleware
// composes naturally with a static file server.
//
// # Representations
//
// Listings are rendered as text/html, text/plain, or application/json,
// negotiated from the Accept header in that preference order. Requests that
// accept none of the three receive 406 Not Acceptable. A renderer can be
// replaced process-wide with SetRenderer.
//
// # Methods
//
// Only GET and HEAD are served. OPTIONS answers 200 and every other method
// 405, both with an Allow header and an empty body.
//
// # Usage
//
//	index, err := dirhttp.Middleware(dirindex.Config{
//	    Root:  "/srv/files",
//	    Icons: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	files := http.FileServer(http.Dir("/srv/files"))
//	http.ListenAndServe(":8080", index(files))
//
// StandaloneHandler builds the same thing with a 404 fallback for callers
// that do not chain their own next handler.
//
// # Error Mapping
//
// Malformed paths answer 400, paths escaping the root 403 (and are logged
// as suspicious), over-length paths 414, and unexpected filesystem faults
// 500. Refusal bodies are a small HTML status page for clients that accept
// HTML and the bare status text for everyone else. Missing paths and
// regular files are never answered here; they belong to the next handler.
package http
