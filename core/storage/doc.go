// Package storage provides an abstraction layer for S3-compatible object
// storage, used as an alternative origin for the inventory snapshot when the
// export is mirrored to a bucket instead of an FTP drop folder.
//
// It wraps the MinIO Go client in a small read-only interface so the snapshot
// fetch can be mocked in unit tests (see core/storage/mocks). Both AWS S3 and
// self-hosted MinIO instances are supported.
//
// # Operations
//
//   - BucketExists: verifies access to the snapshot bucket.
//   - GetObject: retrieves the snapshot workbook as a stream.
//   - StatObject: checks snapshot presence without downloading it.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	reader, err := client.GetObject(ctx, "inventory", "exports/stock.xlsx", minio.GetObjectOptions{})
package storage
