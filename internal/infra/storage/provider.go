// Package storage provides the image upload backends.
package storage

import (
	"context"
	"log/slog"

	"comerciaya/config"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"

	"go.uber.org/fx"
)

// ImageStoreParams holds dependencies for NewImageStore.
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore selects the upload backend from upload.driver.
func NewImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Upload
	if cfg == nil {
		cfg = &config.UploadConfig{Driver: config.UploadDriverBlob, BlobDir: "./uploads"}
	}

	switch cfg.Driver {
	case "", config.UploadDriverBlob:
		store, err := OpenFileImageStore(cfg.BlobDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})
		params.Logger.Info("Image store initialized", slog.String("driver", config.UploadDriverBlob), slog.String("dir", cfg.BlobDir))

		return store, nil
	case config.UploadDriverMinio:
		store, err := NewMinioImageStore(params.Ctx, cfg.Minio, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Image store initialized", slog.String("driver", config.UploadDriverMinio), slog.String("bucket", cfg.Minio.Bucket))

		return store, nil
	default:
		return nil, errors.Errorf("unknown upload driver: %s", cfg.Driver)
	}
}

// Module provides the image store.
var Module = fx.Module("storage",
	fx.Provide(NewImageStore),
)
