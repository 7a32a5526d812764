// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a narrow interface for the operations
// the object ledger store needs. This supports both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the target bucket.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - RemoveObject: Deletes a single object.
//
// IsNotFound classifies "NoSuchKey" style responses so callers can treat a missing
// object as absent state.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "trades")
package storage
