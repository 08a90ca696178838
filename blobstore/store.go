package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a snapshot does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting encoded clustering snapshots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a snapshot atomically. An existing snapshot with the
	// same name is replaced.
	Put(ctx context.Context, name string, data []byte) error

	// Open opens a snapshot for reading. The caller must close the
	// returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a snapshot. Deleting a missing snapshot is not
	// an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all snapshots with the given prefix,
	// sorted ascending.
	List(ctx context.Context, prefix string) ([]string, error)
}
