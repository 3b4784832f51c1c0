package handler

import (
	"log/slog"
	"net/http"

	"comerciaya/internal/delivery/api/response"
	deliverycontext "comerciaya/internal/delivery/context"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the token lifecycle.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register creates an account.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.authUC.Register(ctx, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("User registered", slog.String("user_id", user.ID.String()))

	return response.Success(c, http.StatusCreated, newUserView(user))
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginView{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      newUserView(out.User),
	})
}

// Verify returns the identity behind the presented token.
func (h *AuthHandler) Verify(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &IdentityView{
		UserID:    identity.UserID,
		Email:     identity.Email,
		ExpiresAt: identity.ExpiresAt,
	})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), *identity); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
