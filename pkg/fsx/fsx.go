package fsx

import (
	"context"
	"io"
)

// FileReader is the read-only view of a file store
type FileReader interface {
	// ReadFileStream opens a stored file for streaming
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSystem abstracts the object store used for uploaded documents
type FileSystem interface {
	FileReader

	// Join composes a storage path from segments
	Join(parts ...string) string

	// WriteFile stores the given bytes at path, overwriting any
	// previous object
	WriteFile(ctx context.Context, path string, data []byte) error

	// DeleteFile removes the object at path. Deleting a missing
	// object is not an error.
	DeleteFile(ctx context.Context, path string) error
}
