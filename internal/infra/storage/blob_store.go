package storage

import (
	"context"
	"io"
	"strings"

	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// BlobImageStore stores images in a gocloud bucket. Local development uses a
// fileblob directory that the HTTP server exposes as static files.
type BlobImageStore struct {
	bucket  *blob.Bucket
	baseURL string
}

var _ service.ImageStore = (*BlobImageStore)(nil)

// NewBlobImageStore wraps an already opened bucket.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) *BlobImageStore {
	return &BlobImageStore{bucket: bucket, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// OpenFileImageStore opens (and creates when missing) a directory bucket.
func OpenFileImageStore(dir, publicBaseURL string) (*BlobImageStore, error) {
	if dir == "" {
		return nil, errors.New("upload blob directory is required")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open blob directory %s", dir)
	}

	return NewBlobImageStore(bucket, publicBaseURL), nil
}

// Store writes the object and returns its public URL.
func (s *BlobImageStore) Store(ctx context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrap(err, "write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	return publicURL(s.baseURL, key), nil
}

// Close releases the bucket.
func (s *BlobImageStore) Close() error {
	return s.bucket.Close()
}

func publicURL(baseURL, key string) string {
	key = strings.TrimLeft(key, "/")
	if baseURL == "" {
		return "/" + key
	}

	return baseURL + "/" + key
}
