package postgres

import (
	"context"

	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/errors"
	"comerciaya/internal/infra/persistence/model"
	"comerciaya/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository returns the repository as a domain.BusinessRepository interface.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	business.SearchName = util.FoldSearchText(business.Name)
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	business.SearchName = util.FoldSearchText(business.Name)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{ID: business.ID}).
		Where("active = ?", true).
		Select("name", "search_name", "description", "category", "image_url", "updated_at").
		Updates(fromBusinessDomain(business))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ? AND active = ?", id, true))
}

func (repo *businessRepository) FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE so concurrent rating writes
// for the same business queue behind the current transaction.
func (repo *businessRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id))
}

func (repo *businessRepository) findOne(query *gorm.DB) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := query.First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

func (repo *businessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var rows []*model.BusinessModel
	if err := repo.db.WithContext(ctx).
		Where("owner_user_id = ? AND active = ?", ownerID, true).
		Order("created_at DESC").
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list businesses by owner")
	}

	return toBusinessDomains(rows), nil
}

func (repo *businessRepository) Explore(ctx context.Context, filter entity.ExploreFilter) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).Where("active = ?", true)

	if term := util.FoldSearchText(filter.Name); term != "" {
		query = query.Where(`search_name LIKE ? ESCAPE '\'`, "%"+util.EscapeLike(term)+"%")
	}
	if !entity.IsAllCategories(filter.Category) {
		query = query.Where("category = ?", filter.Category)
	}

	for _, column := range exploreOrder(filter.Sort) {
		query = query.Order(column)
	}

	var rows []*model.BusinessModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to explore businesses")
	}

	return toBusinessDomains(rows), nil
}

// exploreOrder returns ORDER BY columns; created_at and id break ties.
func exploreOrder(mode entity.SortMode) []clause.OrderByColumn {
	desc := func(name string) clause.OrderByColumn {
		return clause.OrderByColumn{Column: clause.Column{Name: name}, Desc: true}
	}
	asc := func(name string) clause.OrderByColumn {
		return clause.OrderByColumn{Column: clause.Column{Name: name}}
	}

	var primary []clause.OrderByColumn
	switch mode {
	case entity.SortRecent:
		primary = nil
	case entity.SortAlphabetical:
		primary = []clause.OrderByColumn{asc("search_name"), asc("name")}
	case entity.SortTopRated:
		primary = []clause.OrderByColumn{desc("rating_average"), desc("rating_count")}
	default:
		primary = []clause.OrderByColumn{desc("rating_count"), desc("rating_average")}
	}

	return append(primary, desc("created_at"), asc("id"))
}

func (repo *businessRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, stats entity.RatingStats) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_count":   stats.Count,
			"rating_average": stats.Average,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating stats")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// Deactivate only matches active rows, so a second call reports ErrBusinessNotFound.
func (repo *businessRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      entity.Category(data.Category),
		OwnerUserID:   data.OwnerUserID,
		ImageURL:      data.ImageURL,
		RatingCount:   data.RatingCount,
		RatingAverage: data.RatingAverage,
		Active:        data.Active,
		SearchName:    data.SearchName,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toBusinessDomains(rows []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, toBusinessDomain(row))
	}

	return businesses
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:            data.ID,
		Name:          data.Name,
		SearchName:    data.SearchName,
		Description:   data.Description,
		Category:      string(data.Category),
		OwnerUserID:   data.OwnerUserID,
		ImageURL:      data.ImageURL,
		RatingCount:   data.RatingCount,
		RatingAverage: data.RatingAverage,
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
