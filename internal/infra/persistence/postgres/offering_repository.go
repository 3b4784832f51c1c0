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
)

type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository returns the repository as a domain.OfferingRepository interface.
func NewOfferingRepository(db *gorm.DB) repository.OfferingRepository {
	return &offeringRepository{db: db}
}

func (repo *offeringRepository) Create(ctx context.Context, offering *entity.Offering) error {
	if offering.ID == uuid.Nil {
		offering.ID = uuid.New()
	}
	offeringM := fromOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offering")
	}

	offering.CreatedAt = offeringM.CreatedAt
	offering.UpdatedAt = offeringM.UpdatedAt

	return nil
}

func (repo *offeringRepository) Update(ctx context.Context, offering *entity.Offering) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferingModel{ID: offering.ID}).
		Where("active = ?", true).
		Select("name", "description", "kind", "image_url", "updated_at").
		Updates(fromOfferingDomain(offering))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offering")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

func (repo *offeringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	var offeringM model.OfferingModel
	if err := repo.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&offeringM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offering")
	}

	return toOfferingDomain(&offeringM), nil
}

func (repo *offeringRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offering, error) {
	var rows []*model.OfferingModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND active = ?", businessID, true).
		Order("created_at DESC").
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list offerings by business")
	}

	return toOfferingDomains(rows), nil
}

func (repo *offeringRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offering, error) {
	var rows []*model.OfferingModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN businesses ON businesses.id = offerings.business_id").
		Where("businesses.owner_user_id = ? AND businesses.active = ? AND offerings.active = ?", ownerID, true, true).
		Order("offerings.created_at DESC").
		Order("offerings.id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list offerings by owner")
	}

	return toOfferingDomains(rows), nil
}

func (repo *offeringRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferingModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate offering")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

// DeactivateByBusiness is a single UPDATE over every active offering of the business.
func (repo *offeringRepository) DeactivateByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferingModel{}).
		Where("business_id = ? AND active = ?", businessID, true).
		Update("active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate offerings")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toOfferingDomain(data *model.OfferingModel) *entity.Offering {
	if data == nil {
		return nil
	}

	return &entity.Offering{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Kind:        entity.OfferingKind(data.Kind),
		BusinessID:  data.BusinessID,
		ImageURL:    data.ImageURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOfferingDomains(rows []*model.OfferingModel) []*entity.Offering {
	offerings := make([]*entity.Offering, 0, len(rows))
	for _, row := range rows {
		offerings = append(offerings, toOfferingDomain(row))
	}

	return offerings
}

func fromOfferingDomain(data *entity.Offering) *model.OfferingModel {
	return &model.OfferingModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Kind:        string(data.Kind),
		BusinessID:  data.BusinessID,
		ImageURL:    data.ImageURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
