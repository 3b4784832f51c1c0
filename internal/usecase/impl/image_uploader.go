package impl

import (
	"context"
	"io"
	"path"
	"strings"

	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"
	"comerciaya/internal/util"

	"github.com/google/uuid"
)

// imageTypes maps accepted file extensions to their content type.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// imageUploader validates client images and hands them to the image store.
type imageUploader struct {
	store    service.ImageStore
	maxBytes int64
}

func newImageUploader(store service.ImageStore, maxBytes int64) imageUploader {
	return imageUploader{store: store, maxBytes: maxBytes}
}

// upload stores the image under prefix and returns its public URL.
func (u imageUploader) upload(ctx context.Context, prefix string, img *usecase.ImageUpload) (string, error) {
	if img == nil || img.Body == nil {
		return "", errors.Wrap(domainerrors.ErrInvalidImage, "image is required")
	}

	ext := strings.ToLower(path.Ext(img.Filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("extensión no permitida: " + ext))
	}

	if img.Size <= 0 || img.Size > u.maxBytes {
		return "", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("tamaño máximo: " + util.FormatBytes(u.maxBytes)))
	}

	key := prefix + "/" + uuid.NewString() + ext
	url, err := u.store.Store(ctx, key, io.LimitReader(img.Body, u.maxBytes), img.Size, contentType)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return url, nil
}
