package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "comerciaya/internal/delivery/context"
	"comerciaya/internal/domain/constants"
	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
//
// Every write locks the parent business first, then changes the rating and
// recomputes the statistics inside the same transaction. Concurrent writes to
// one business are serialized on that lock, so the stored count and average
// always match the committed ratings.
type ratingService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateRating(score int, comment string) error {
	if !entity.IsValidScore(score) {
		return errors.WithStack(domainerrors.ErrInvalidScore)
	}
	if utf8.RuneCountInString(comment) > entity.MaxCommentLength {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("comment"))
	}

	return nil
}

// recompute derives the business statistics from its current ratings and stores them.
func recompute(ctx context.Context, repoFactory repository.RepositoryFactory, businessID uuid.UUID) (entity.RatingStats, error) {
	count, sum, err := repoFactory.NewRatingRepository().StatsForBusiness(ctx, businessID)
	if err != nil {
		return entity.RatingStats{}, translateRepoError(err, "failed to aggregate ratings")
	}

	stats := entity.NewRatingStats(count, sum)
	if err := repoFactory.NewBusinessRepository().UpdateRatingStats(ctx, businessID, stats); err != nil {
		return entity.RatingStats{}, translateRepoError(err, "failed to store rating statistics")
	}

	return stats, nil
}

// lockBusiness takes the per-business write lock.
func lockBusiness(ctx context.Context, repoFactory repository.RepositoryFactory, businessID uuid.UUID) (*entity.Business, error) {
	business, err := repoFactory.NewBusinessRepository().FindByIDForUpdate(ctx, businessID)
	if err != nil {
		return nil, translateRepoError(err, "failed to lock business")
	}

	return business, nil
}

// loadOwnRating returns the rating when raterID wrote it. Foreign ratings are reported as not found.
func loadOwnRating(ctx context.Context, repoFactory repository.RepositoryFactory, ratingID, raterID uuid.UUID) (*entity.Rating, error) {
	rating, err := repoFactory.NewRatingRepository().FindByID(ctx, ratingID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find rating")
	}
	if rating.RaterUserID != raterID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "rating not written by requester")
	}

	return rating, nil
}

// Create rates an active business the requester does not own.
func (srv *ratingService) Create(ctx context.Context, raterID uuid.UUID, input *usecase.CreateRatingInput) (*usecase.RatingOutput, error) {
	comment := strings.TrimSpace(input.Comment)
	if err := validateRating(input.Score, comment); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	rating := &entity.Rating{
		ID:          uuid.New(),
		BusinessID:  input.BusinessID,
		RaterUserID: raterID,
		Score:       input.Score,
		Comment:     comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var stats entity.RatingStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := lockBusiness(ctx, repoFactory, input.BusinessID)
		if err != nil {
			return err
		}
		if !business.Active {
			return errors.Wrap(domainerrors.ErrNotFound, "business is inactive")
		}
		if err := requireNotOwner(business, raterID); err != nil {
			return err
		}

		ratingRepo := repoFactory.NewRatingRepository()
		_, err = ratingRepo.FindByBusinessAndRater(ctx, input.BusinessID, raterID)
		switch {
		case err == nil:
			return errors.WithStack(domainerrors.ErrDuplicateRating)
		case !errors.Is(err, repository.ErrRatingNotFound):
			return translateRepoError(err, "failed to check existing rating")
		}

		if err := ratingRepo.Create(ctx, rating); err != nil {
			return translateRepoError(err, "failed to create rating")
		}

		stats, err = recompute(ctx, repoFactory, input.BusinessID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rating")
	}

	srv.afterWrite(ctx, constants.EventRatingCreated, rating, stats)

	return &usecase.RatingOutput{Rating: rating, Stats: stats}, nil
}

// Update changes score and comment of the requester's own rating.
func (srv *ratingService) Update(ctx context.Context, raterID, ratingID uuid.UUID, input *usecase.UpdateRatingInput) (*usecase.RatingOutput, error) {
	comment := strings.TrimSpace(input.Comment)
	if err := validateRating(input.Score, comment); err != nil {
		return nil, err
	}

	var (
		rating *entity.Rating
		stats  entity.RatingStats
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnRating(ctx, repoFactory, ratingID, raterID)
		if err != nil {
			return err
		}
		if _, err := lockBusiness(ctx, repoFactory, found.BusinessID); err != nil {
			return err
		}

		found.Score = input.Score
		found.Comment = comment
		found.UpdatedAt = srv.now().UTC()
		if err := repoFactory.NewRatingRepository().Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update rating")
		}
		rating = found

		stats, err = recompute(ctx, repoFactory, found.BusinessID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update rating")
	}

	srv.afterWrite(ctx, constants.EventRatingUpdated, rating, stats)

	return &usecase.RatingOutput{Rating: rating, Stats: stats}, nil
}

// Delete removes the requester's own rating and returns the new statistics.
func (srv *ratingService) Delete(ctx context.Context, raterID, ratingID uuid.UUID) (entity.RatingStats, error) {
	var (
		rating *entity.Rating
		stats  entity.RatingStats
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnRating(ctx, repoFactory, ratingID, raterID)
		if err != nil {
			return err
		}
		if _, err := lockBusiness(ctx, repoFactory, found.BusinessID); err != nil {
			return err
		}

		if err := repoFactory.NewRatingRepository().Delete(ctx, ratingID); err != nil {
			return translateRepoError(err, "failed to delete rating")
		}
		rating = found

		stats, err = recompute(ctx, repoFactory, found.BusinessID)

		return err
	})
	if err != nil {
		return entity.RatingStats{}, errors.Wrap(err, "failed to delete rating")
	}

	srv.afterWrite(ctx, constants.EventRatingDeleted, rating, stats)

	return stats, nil
}

// ListByBusiness lists the ratings of an active business, newest first.
func (srv *ratingService) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Rating, error) {
	var ratings []*entity.Rating

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewBusinessRepository().FindByID(ctx, businessID); err != nil {
			return translateRepoError(err, "failed to find business")
		}

		found, err := repoFactory.NewRatingRepository().ListByBusiness(ctx, businessID)
		if err != nil {
			return translateRepoError(err, "failed to list ratings")
		}
		ratings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business ratings")
	}

	return ratings, nil
}

func (srv *ratingService) afterWrite(ctx context.Context, eventType string, rating *entity.Rating, stats entity.RatingStats) {
	logger := srv.log(ctx)
	logger.Info("Rating statistics recomputed",
		slog.String("event", eventType),
		slog.String("business_id", rating.BusinessID.String()),
		slog.Int("rating_count", stats.Count),
		slog.Float64("rating_average", stats.Average),
	)

	publishEvent(ctx, srv.publisher, logger, &service.MarketplaceEvent{
		Type:          eventType,
		BusinessID:    rating.BusinessID.String(),
		RatingID:      rating.ID.String(),
		ActorUserID:   rating.RaterUserID.String(),
		RatingCount:   stats.Count,
		RatingAverage: stats.Average,
	})
}
