package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for storing exported client datasets and
// manifests. Implementations must be safe for concurrent use.
type BlobStore interface {
	// Put writes a blob atomically, replacing any existing blob of the
	// same name.
	Put(ctx context.Context, name string, data []byte) error

	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// List returns the names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}
