package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access token.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for the user that expires after the configured TTL.
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// Verify returns the claims of a valid token. It fails with
	// domain ErrTokenExpired once the expiry has passed and ErrTokenMalformed
	// for any signature or structure problem.
	Verify(token string) (*Claims, error)
}
