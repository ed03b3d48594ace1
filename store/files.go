// File: store/files.go
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// UploadFile stores a file in the magazine-assets bucket and returns its
// public URL. Returns ErrUnavailable when object storage was not configured.
func (s *Store) UploadFile(ctx context.Context, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	if s.objects == nil {
		return "", ErrUnavailable
	}

	_, err := s.objects.PutObject(ctx, s.bucket, fileName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.objects.EndpointURL(), s.bucket, fileName)
	return url, nil
}

// DeleteFile removes a file from the magazine-assets bucket.
func (s *Store) DeleteFile(ctx context.Context, fileName string) error {
	if s.objects == nil {
		return ErrUnavailable
	}
	if err := s.objects.RemoveObject(ctx, s.bucket, fileName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", fileName, err)
	}
	return nil
}
