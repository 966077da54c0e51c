// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so a message catalog can be read from an
// AWS S3 or self-hosted MinIO bucket instead of the local filesystem.
//
// # Client Interface
//
// The Client interface only exposes what catalog loading needs, which keeps
// it easy to mock in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "catalogs")
package storage
