package usecase

import (
	"context"
	"time"

	"comerciaya/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required,personname,max=80"`
	LastName  string `json:"lastName" validate:"required,personname,max=80"`
	BirthDate string `json:"birthDate" validate:"required,birthdate"`
	Gender    string `json:"gender" validate:"required,oneof=Mujer Hombre 'Sin Especificar'"`
	Phone     string `json:"phone" validate:"required,phone"`
}

// LoginInput defines the credentials for a login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput carries the access token and the account it belongs to.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase covers account creation and the bearer token lifecycle.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Authenticate verifies a bearer token and rejects revoked ones.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	// Logout revokes the token behind identity until it expires.
	Logout(ctx context.Context, identity entity.Identity) error
}
