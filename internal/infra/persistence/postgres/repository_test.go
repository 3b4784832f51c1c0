package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var businessColumns = []string{
	"id", "name", "search_name", "description", "category", "owner_user_id", "image_url",
	"rating_count", "rating_average", "active", "created_at", "updated_at",
}

func TestBusinessRepository_FindByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "businesses" WHERE .*id = .*active = `).
		WillReturnRows(sqlmock.NewRows(businessColumns))

	business, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, business)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_FindByIDForUpdateLocksRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)

	id := uuid.New()
	owner := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "businesses" WHERE id = .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(businessColumns).
			AddRow(id.String(), "Café X", "cafe x", "", "Comidas y Bebidas", owner.String(), "", 2, 3.0, true, now, now))

	business, err := repo.FindByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, business.ID)
	assert.Equal(t, owner, business.OwnerUserID)
	assert.Equal(t, entity.CategoryFood, business.Category)
	assert.Equal(t, 2, business.RatingCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_ExploreFoldsAndOrders(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "businesses" WHERE active = .* AND search_name LIKE .* ORDER BY "rating_count" DESC.*"rating_average" DESC.*"created_at" DESC.*"id"`).
		WithArgs(true, "%panaderia%").
		WillReturnRows(sqlmock.NewRows(businessColumns))

	businesses, err := repo.Explore(context.Background(), entity.ExploreFilter{
		Name:     "Panadería",
		Category: entity.CategoryAll,
		Sort:     entity.SortPopularity,
	})
	require.NoError(t, err)
	assert.Empty(t, businesses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_ExploreCategoryAndTopRated(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "businesses" WHERE active = .* AND category = .* ORDER BY "rating_average" DESC.*"rating_count" DESC`).
		WithArgs(true, string(entity.CategoryTourism)).
		WillReturnRows(sqlmock.NewRows(businessColumns))

	_, err := repo.Explore(context.Background(), entity.ExploreFilter{
		Category: string(entity.CategoryTourism),
		Sort:     entity.SortTopRated,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_ExploreEscapesWildcards(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)

	mock.ExpectQuery(`search_name LIKE`).
		WithArgs(true, `%100\%%`).
		WillReturnRows(sqlmock.NewRows(businessColumns))

	_, err := repo.Explore(context.Background(), entity.ExploreFilter{Name: "100%"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_DeactivateTwice(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "businesses" SET "active"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "businesses" SET "active"`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Deactivate(context.Background(), id))
	assert.ErrorIs(t, repo.Deactivate(context.Background(), id), repository.ErrBusinessNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_UpdateRatingStats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBusinessRepository(db)

	mock.ExpectExec(`UPDATE "businesses" SET .*"rating_average"=.*"rating_count"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRatingStats(context.Background(), uuid.New(), entity.RatingStats{Count: 2, Average: 3.0})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferingRepository_DeactivateByBusiness(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOfferingRepository(db)

	mock.ExpectExec(`UPDATE "offerings" SET "active"=.* WHERE .*business_id = `).
		WillReturnResult(sqlmock.NewResult(0, 3))

	changed, err := repo.DeactivateByBusiness(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_CreateDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectExec(`INSERT INTO "ratings"`).WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), &entity.Rating{
		BusinessID:  uuid.New(),
		RaterUserID: uuid.New(),
		Score:       4,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_CreateDuplicateFromSQLState(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectExec(`INSERT INTO "ratings"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_ratings_business_rater" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.Rating{BusinessID: uuid.New(), RaterUserID: uuid.New(), Score: 5})
	assert.ErrorIs(t, err, repository.ErrDuplicateRating)
}

func TestRatingRepository_StatsForBusiness(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(score\), 0\) AS sum FROM "ratings" WHERE business_id = `).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(2, 6))

	count, sum, err := repo.StatsForBusiness(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 6, sum)
	assert.Equal(t, entity.RatingStats{Count: 2, Average: 3.0}, entity.NewRatingStats(count, sum))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_DeleteMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectExec(`DELETE FROM "ratings" WHERE id = `).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrRatingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePhoneTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_phone" (SQLSTATE 23505)`))

	err := repo.Update(context.Background(), &entity.User{ID: uuid.New(), FirstName: "Ana", Phone: "+56911111111"})
	assert.ErrorIs(t, err, repository.ErrPhoneTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateEmailTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), &entity.User{Email: "Ana@Example.com", FirstName: "Ana"})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "businesses" SET "active"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "offerings" SET "active"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		businessID := uuid.New()
		if err := factory.NewBusinessRepository().Deactivate(ctx, businessID); err != nil {
			return err
		}
		_, err := factory.NewOfferingRepository().DeactivateByBusiness(ctx, businessID)

		return err
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "businesses" SET "active"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewBusinessRepository().Deactivate(ctx, uuid.New())
	})
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
