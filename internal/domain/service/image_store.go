package service

import (
	"context"
	"io"
)

// ImageStore uploads images and returns the public URL of the stored object.
type ImageStore interface {
	Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)
}
