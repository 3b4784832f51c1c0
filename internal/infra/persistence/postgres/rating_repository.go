package postgres

import (
	"context"

	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/errors"
	"comerciaya/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns the repository as a domain.RatingRepository interface.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidScore
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{ID: rating.ID}).
		Select("score", "comment", "updated_at").
		Updates(fromRatingDomain(rating))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidScore
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

func (repo *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RatingModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

func (repo *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *ratingRepository) FindByBusinessAndRater(ctx context.Context, businessID, raterID uuid.UUID) (*entity.Rating, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("business_id = ? AND rater_user_id = ?", businessID, raterID))
}

func (repo *ratingRepository) findOne(query *gorm.DB) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := query.First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

func (repo *ratingRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Rating, error) {
	var rows []*model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, toRatingDomain(row))
	}

	return ratings, nil
}

type ratingAggregate struct {
	Count int
	Sum   int
}

// StatsForBusiness reads COUNT and SUM from the primary.
func (repo *ratingRepository) StatsForBusiness(ctx context.Context, businessID uuid.UUID) (int, int, error) {
	var agg ratingAggregate
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RatingModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(score), 0) AS sum").
		Where("business_id = ?", businessID).
		Scan(&agg).Error; err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate ratings")
	}

	return agg.Count, agg.Sum, nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		RaterUserID: data.RaterUserID,
		Score:       data.Score,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		RaterUserID: data.RaterUserID,
		Score:       data.Score,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
