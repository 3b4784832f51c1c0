package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenRevoker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryTokenRevoker()
	r.now = func() time.Time { return now }

	require.NoError(t, r.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	require.NoError(t, r.Revoke(ctx, "jti-expired", now.Add(-time.Second)))

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = r.IsRevoked(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevoker(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := NewRedisTokenRevoker(client)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	server.FastForward(2 * time.Minute)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevoker_SkipsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := NewRedisTokenRevoker(client)
	require.NoError(t, r.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))

	assert.False(t, server.Exists(revocationKeyPrefix+"jti-old"))
}
