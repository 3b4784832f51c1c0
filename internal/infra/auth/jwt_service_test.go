package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comerciaya/config"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/errors"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
	}
}

type fakeClock struct{ current time.Time }

func (c *fakeClock) now() time.Time { return c.current }

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(), clock.now)
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := svc.Issue(userID, "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.current.Add(24*time.Hour), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc, err := newJWTService(newTestConfig(), time.Now)
	require.NoError(t, err)

	userID := uuid.New()
	first, _, err := svc.Issue(userID, "ana@example.com")
	require.NoError(t, err)
	second, _, err := svc.Issue(userID, "ana@example.com")
	require.NoError(t, err)

	firstClaims, err := svc.Verify(first)
	require.NoError(t, err)
	secondClaims, err := svc.Verify(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(), clock.now)
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	clock.current = expiresAt
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	clock.current = expiresAt.Add(-time.Second)
	_, err = svc.Verify(token)
	assert.NoError(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc, err := newJWTService(newTestConfig(), time.Now)
	require.NoError(t, err)

	other, err := newJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "another-secret"}}, time.Now)
	require.NoError(t, err)
	foreign, _, err := other.Issue(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": uuid.NewString(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":         "clearly-not-a-jwt-token-format",
		"wrong signature": foreign,
		"none algorithm":  noneToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Verify(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
			assert.False(t, errors.Is(err, domainerrors.ErrTokenExpired))
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
