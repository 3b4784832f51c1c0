package usecase

import (
	"context"

	"comerciaya/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRatingInput defines a new rating for a business.
type CreateRatingInput struct {
	BusinessID uuid.UUID `json:"businessId" validate:"required"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment"`
}

// UpdateRatingInput holds the editable rating fields.
type UpdateRatingInput struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RatingOutput is a rating together with the statistics of its business after the write.
type RatingOutput struct {
	Rating *entity.Rating
	Stats  entity.RatingStats
}

// RatingUsecase defines the rating operations. Every write recomputes the
// business statistics in the same transaction.
type RatingUsecase interface {
	Create(ctx context.Context, raterID uuid.UUID, input *CreateRatingInput) (*RatingOutput, error)
	Update(ctx context.Context, raterID, ratingID uuid.UUID, input *UpdateRatingInput) (*RatingOutput, error)
	Delete(ctx context.Context, raterID, ratingID uuid.UUID) (entity.RatingStats, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Rating, error)
}
