package usecase

import (
	"context"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOfferingInput defines a new product or service.
type CreateOfferingInput struct {
	BusinessID  uuid.UUID `json:"businessId" validate:"required"`
	Name        string    `json:"name" validate:"required,notblank,max=120"`
	Description string    `json:"description" validate:"max=2000"`
	Kind        string    `json:"kind" validate:"required,notblank"`
}

// UpdateOfferingInput holds the editable offering fields.
type UpdateOfferingInput struct {
	Name        string `json:"name" validate:"required,notblank,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Kind        string `json:"kind" validate:"required,notblank"`
}

// OfferingUsecase defines the catalog operations. Ownership flows through the parent business.
type OfferingUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateOfferingInput) (*entity.Offering, error)
	Update(ctx context.Context, ownerID, offeringID uuid.UUID, input *UpdateOfferingInput) (*entity.Offering, error)
	Delete(ctx context.Context, ownerID, offeringID uuid.UUID) error
	Get(ctx context.Context, offeringID uuid.UUID) (*entity.Offering, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offering, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offering, error)
	UpdateImage(ctx context.Context, ownerID, offeringID uuid.UUID, upload *ImageUpload) (*entity.Offering, error)
}
