package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the caller resolved from a verified access token.
// It is passed by value through each request; nothing stores it globally.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	TokenID   string // jti, used to revoke the token on logout
	ExpiresAt time.Time
}
