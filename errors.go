package dirindex

import "errors"

var (
	// ErrMalformedPath is returned when a request path cannot be decoded or
	// contains a NUL byte
	ErrMalformedPath = errors.New("malformed path")
	// ErrOutsideRoot is returned when a resolved path escapes the configured root
	ErrOutsideRoot = errors.New("path outside root")
	// ErrNotDirectory is returned when a resolved path exists but is not a directory
	ErrNotDirectory = errors.New("not a directory")
	// ErrPathTooLong is returned when a resolved path exceeds the filesystem limit
	ErrPathTooLong = errors.New("path too long")
)
