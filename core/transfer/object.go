package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"stock-sync/core/storage"
)

// ObjectSource fetches the snapshot from an S3-compatible bucket, for
// deployments that mirror the inventory export into object storage instead of
// an FTP drop folder.
type ObjectSource struct {
	client storage.Client
	bucket string
	key    string
}

// NewObjectSource creates an object-storage-backed snapshot source.
func NewObjectSource(client storage.Client, bucket, key string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, key: key}
}

// Fetch downloads the snapshot object into memory.
func (s *ObjectSource) Fetch(ctx context.Context) ([]byte, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: bucket %s: %v", ErrTransfer, s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s not found", ErrTransfer, s.bucket)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: retrieve %s: %v", ErrTransfer, s.key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransfer, s.key, err)
	}

	return data, nil
}
