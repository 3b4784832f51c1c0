package usecase

import (
	"context"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,personname,max=80"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,personname,max=80"`
	BirthDate *string `json:"birthDate,omitempty" validate:"omitempty,birthdate"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=Mujer Hombre 'Sin Especificar'"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,phone"`
}

// ProfileUsecase defines the operations on the caller's own account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UpdatePhoto(ctx context.Context, userID uuid.UUID, upload *ImageUpload) (*entity.User, error)
}
