// Package blobstore provides storage abstraction for exported splits.
//
// BlobStore is the interface the export pipeline writes client datasets and
// manifests through. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic writes
//   - MemoryStore: In-memory store for tests
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Put(ctx, name, data) error         // Atomic write
//	    Open(ctx, name) (io.ReadCloser, error)
//	    List(ctx, prefix) ([]string, error)
//	    Delete(ctx, name) error
//	}
package blobstore
