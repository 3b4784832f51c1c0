package service

import (
	"context"
	"time"
)

// TokenRevoker remembers logged-out token IDs until they would expire anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
