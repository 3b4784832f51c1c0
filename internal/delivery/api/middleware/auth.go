package middleware

import (
	"strings"

	deliverycontext "comerciaya/internal/delivery/context"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer "

// AuthMiddleware resolves the bearer token into an entity.Identity.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request unless it carries a valid, unrevoked
// access token. On success the identity is stored on the echo.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		if header == "" {
			return errors.WithStack(domainerrors.ErrTokenMissing)
		}

		if len(header) <= len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
			return errors.WithStack(domainerrors.ErrTokenMalformed)
		}

		identity, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(header[len(bearerScheme):]))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
