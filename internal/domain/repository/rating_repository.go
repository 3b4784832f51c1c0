package repository

import (
	"context"
	"errors"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRatingNotFound is returned when no rating matches the lookup.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrDuplicateRating is returned when the rater already rated the business.
	ErrDuplicateRating = errors.New("rating already exists for business and rater")
)

type RatingRepository interface {
	// Create persists a rating. It returns ErrDuplicateRating on the (business, rater) unique key.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update writes score and comment.
	Update(ctx context.Context, rating *entity.Rating) error

	// Delete removes the rating permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// FindByBusinessAndRater returns ErrRatingNotFound when the pair has no rating.
	FindByBusinessAndRater(ctx context.Context, businessID, raterID uuid.UUID) (*entity.Rating, error)

	// ListByBusiness returns the ratings of one business, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Rating, error)

	// StatsForBusiness returns the number of ratings and the sum of their scores,
	// read from the primary so the result includes writes of the current transaction.
	StatsForBusiness(ctx context.Context, businessID uuid.UUID) (count, sum int, err error)
}
