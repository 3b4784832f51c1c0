package storage

import (
	"context"
	"io"
	"strings"
	"time"

	"comerciaya/config"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const bucketCheckTimeout = 5 * time.Second

// MinioImageStore stores images in a MinIO/S3 compatible bucket.
type MinioImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var _ service.ImageStore = (*MinioImageStore)(nil)

// NewMinioImageStore connects to MinIO and ensures the bucket exists.
func NewMinioImageStore(ctx context.Context, cfg config.MinioConfig, publicBaseURL string) (*MinioImageStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("minio endpoint and bucket are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init minio client")
	}

	checkCtx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()

	exists, err := client.BucketExists(checkCtx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "check bucket")
	}
	if !exists {
		if err := client.MakeBucket(checkCtx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "create bucket")
		}
	}

	baseURL := strings.TrimRight(publicBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
	}

	return &MinioImageStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

// Store uploads the object and returns its public URL.
func (m *MinioImageStore) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "put object")
	}

	return publicURL(m.baseURL, key), nil
}
