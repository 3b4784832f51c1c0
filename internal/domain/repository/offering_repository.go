package repository

import (
	"context"
	"errors"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOfferingNotFound is returned when no active offering matches the lookup.
var ErrOfferingNotFound = errors.New("offering not found")

type OfferingRepository interface {
	Create(ctx context.Context, offering *entity.Offering) error
	Update(ctx context.Context, offering *entity.Offering) error

	// FindByID returns the active offering with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error)

	// ListByBusiness returns the active offerings of one business, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offering, error)

	// ListByOwner returns the active offerings of the owner's active businesses.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offering, error)

	// Deactivate sets active = false on a single offering.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByBusiness sets active = false on every offering of the business
	// in one statement and returns the number of rows changed.
	DeactivateByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
