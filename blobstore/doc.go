// Package blobstore provides storage abstraction for clustering snapshots.
//
// Store is the interface for writing, reading, listing and deleting encoded
// snapshots. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic writes
//   - MemoryStore: In-memory store for testing
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error         // Atomic write
//	    Open(ctx, name) (io.ReadCloser, error)
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// SaveSnapshot and LoadSnapshot bridge any Store to the persistence wire
// format, so clustering results round-trip through arbitrary backends.
package blobstore
