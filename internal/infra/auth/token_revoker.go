package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"comerciaya/config"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"
)

const revocationKeyPrefix = "revoked:"

// RevokerParams holds dependencies for the token revoker.
type RevokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenRevoker selects the revocation backend from config.
func NewTokenRevoker(params RevokerParams) (service.TokenRevoker, error) {
	cfg := params.Config.Session
	if cfg == nil || cfg.Revoker == "" || cfg.Revoker == config.RevokerMemory {
		params.Logger.Info("Using in-memory token revoker")

		return NewMemoryTokenRevoker(), nil
	}

	if cfg.Revoker != config.RevokerRedis {
		return nil, errors.Errorf("unknown token revoker: %s", cfg.Revoker)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis token revoker connected", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisTokenRevoker(client), nil
}

// MemoryTokenRevoker keeps revoked token IDs in-memory (single instance only).
type MemoryTokenRevoker struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryTokenRevoker() *MemoryTokenRevoker {
	return &MemoryTokenRevoker{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Revoke marks a token ID as revoked until its expiry.
func (r *MemoryTokenRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !expiresAt.After(now) {
		return nil
	}
	r.tokens[tokenID] = expiresAt

	for id, expiry := range r.tokens {
		if !expiry.After(now) {
			delete(r.tokens, id)
		}
	}

	return nil
}

func (r *MemoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.tokens[tokenID]
	if !ok {
		return false, nil
	}
	if !expiry.After(r.now()) {
		delete(r.tokens, tokenID)

		return false, nil
	}

	return true, nil
}

// RedisTokenRevoker stores revoked token IDs in Redis with a TTL.
type RedisTokenRevoker struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisTokenRevoker(client redis.UniversalClient) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client, now: time.Now}
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store revoked token")
	}

	return nil
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}

	return n > 0, nil
}
