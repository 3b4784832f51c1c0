// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"comerciaya/config"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.TokenTTL(),
		now:    now,
	}, nil
}

// Issue signs a token carrying the user ID and email.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify checks signature, structure and expiry.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenMalformed, err.Error())
	}

	if claims.UserID == uuid.Nil || claims.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenMalformed, "token is missing identity claims")
	}

	return claims, nil
}
