package context

import (
	"comerciaya/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo.Context key holding the authenticated caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the caller resolved by the auth middleware.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authenticated caller, or false on public routes.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}
