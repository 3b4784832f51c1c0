package handler

import (
	"net/http"

	"comerciaya/internal/delivery/api/response"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// UserHandler serves the caller's own profile.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
	}
}

// GetProfile returns the authenticated user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// UpdateProfile applies the provided profile fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// UpdatePhoto replaces the profile photo with the uploaded image.
func (h *UserHandler) UpdatePhoto(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	return withImage(c, func(upload *usecase.ImageUpload) error {
		user, err := h.profileUC.UpdatePhoto(c.Request().Context(), identity.UserID, upload)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newUserView(user))
	})
}
