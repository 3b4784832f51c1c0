// Package handler contains the echo handlers of the marketplace API.
package handler

import (
	"net/http"

	deliverycontext "comerciaya/internal/delivery/context"
	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// imageField is the multipart field carrying uploaded images.
const imageField = "imagen"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentIdentity returns the caller stored by the auth middleware.
func currentIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	return identity, nil
}

// pathID parses a uuid path parameter. Ids that cannot exist are reported as not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrNotFound)
	}

	return id, nil
}

// bindAndValidate decodes the request into input and runs the struct rules.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("cuerpo de la solicitud inválido"))
	}

	return errors.WithStack(c.Validate(input))
}

// withImage opens the uploaded image and closes it once fn returns.
func withImage(c echo.Context, fn func(upload *usecase.ImageUpload) error) error {
	header, err := c.FormFile(imageField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("campo " + imageField + " requerido"))
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}
	defer file.Close()

	return fn(&usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
}
