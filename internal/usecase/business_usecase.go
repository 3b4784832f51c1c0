package usecase

import (
	"context"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessInput is the owner-editable part of a business.
type BusinessInput struct {
	Name        string `json:"name" validate:"required,notblank,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"required,notblank"`
}

// ExploreInput holds the raw explore query parameters.
type ExploreInput struct {
	Name     string `query:"name"`
	Category string `query:"category"`
	Sort     string `query:"sort"`
}

// BusinessUsecase defines the business listing operations. Mutations are owner-only
// and report foreign, inactive and missing businesses the same way.
type BusinessUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *BusinessInput) (*entity.Business, error)
	Update(ctx context.Context, ownerID, businessID uuid.UUID, input *BusinessInput) (*entity.Business, error)
	// Delete deactivates the business and all of its offerings.
	Delete(ctx context.Context, ownerID, businessID uuid.UUID) error
	Get(ctx context.Context, businessID uuid.UUID) (*entity.Business, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)
	Explore(ctx context.Context, input *ExploreInput) ([]*entity.Business, error)
	Categories() []entity.Category
	UpdateImage(ctx context.Context, ownerID, businessID uuid.UUID, upload *ImageUpload) (*entity.Business, error)
	// QRCode returns a PNG linking to the public page of an active business.
	QRCode(ctx context.Context, businessID uuid.UUID) ([]byte, error)
}
