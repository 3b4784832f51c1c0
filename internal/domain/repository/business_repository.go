package repository

import (
	"context"
	"errors"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when no active business matches the lookup.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository persists businesses. Every read filters on active = true
// unless the method name says otherwise.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error

	// Update writes the owner-editable fields (name, description, category, image, search name).
	Update(ctx context.Context, business *entity.Business) error

	// FindByID returns the active business with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByIDIncludingInactive ignores the active flag.
	FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByIDForUpdate returns the business regardless of the active flag and
	// locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// Explore lists active businesses matching the filter in the requested order.
	Explore(ctx context.Context, filter entity.ExploreFilter) ([]*entity.Business, error)

	// UpdateRatingStats stores the aggregated rating fields only.
	UpdateRatingStats(ctx context.Context, id uuid.UUID, stats entity.RatingStats) error

	// Deactivate sets active = false. It returns ErrBusinessNotFound when the business is already inactive.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
