// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when another user already has the email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPhoneTaken is returned when another user already has the phone number.
	ErrPhoneTaken = errors.New("phone already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their lower-cased email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// Create persists a new user. It returns ErrEmailTaken or ErrPhoneTaken on unique violations.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
