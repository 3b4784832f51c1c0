package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct{ current time.Time }

func (c *testClock) now() time.Time {
	c.current = c.current.Add(time.Second)

	return c.current
}

func newTestStore(t *testing.T) (*Store, *entity.User) {
	t.Helper()

	store := NewStore()
	clock := &testClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store.now = clock.now

	owner := &entity.User{Email: "Owner@Example.com", Phone: "+56900000001", FirstName: "Olga"}
	require.NoError(t, NewUserRepository(store).Create(context.Background(), owner))

	return store, owner
}

func TestUserRepository_Unique(t *testing.T) {
	store, owner := newTestStore(t)
	users := NewUserRepository(store)
	ctx := context.Background()

	assert.Equal(t, "owner@example.com", owner.Email)

	err := users.Create(ctx, &entity.User{Email: "owner@example.com", Phone: "+56900000002"})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)

	err = users.Create(ctx, &entity.User{Email: "other@example.com", Phone: owner.Phone})
	assert.ErrorIs(t, err, repository.ErrPhoneTaken)

	found, err := users.FindByEmail(ctx, "OWNER@example.com")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.ID)
}

func TestTransactionManager_RollbackDiscardsWrites(t *testing.T) {
	store, owner := newTestStore(t)
	tm := NewTransactionManager(store)
	ctx := context.Background()
	boom := errors.New("boom")

	var createdID uuid.UUID
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		business := &entity.Business{Name: "Café X", Category: entity.CategoryFood, OwnerUserID: owner.ID, Active: true}
		if err := f.NewBusinessRepository().Create(ctx, business); err != nil {
			return err
		}
		createdID = business.ID

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewBusinessRepository(store).FindByID(ctx, createdID)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
}

func TestBusinessRepository_ExploreOrdering(t *testing.T) {
	store, owner := newTestStore(t)
	businesses := NewBusinessRepository(store)
	ctx := context.Background()

	create := func(name string, category entity.Category, count int, avg float64) *entity.Business {
		b := &entity.Business{Name: name, Category: category, OwnerUserID: owner.ID, Active: true}
		require.NoError(t, businesses.Create(ctx, b))
		require.NoError(t, businesses.UpdateRatingStats(ctx, b.ID, entity.RatingStats{Count: count, Average: avg}))

		return b
	}

	bakery := create("Panadería Central", entity.CategoryFood, 10, 4.0)
	crafts := create("Artesanías Ñuble", entity.CategoryCrafts, 2, 5.0)
	cafe := create("Café X", entity.CategoryFood, 10, 4.5)
	closed := create("Panadería Cerrada", entity.CategoryFood, 50, 5.0)
	require.NoError(t, businesses.Deactivate(ctx, closed.ID))

	ids := func(list []*entity.Business) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(list))
		for _, b := range list {
			out = append(out, b.ID)
		}

		return out
	}

	popular, err := businesses.Explore(ctx, entity.ExploreFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{cafe.ID, bakery.ID, crafts.ID}, ids(popular))

	topRated, err := businesses.Explore(ctx, entity.ExploreFilter{Sort: entity.SortTopRated})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{crafts.ID, cafe.ID, bakery.ID}, ids(topRated))

	recent, err := businesses.Explore(ctx, entity.ExploreFilter{Sort: entity.SortRecent})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{cafe.ID, crafts.ID, bakery.ID}, ids(recent))

	alphabetical, err := businesses.Explore(ctx, entity.ExploreFilter{Sort: entity.SortAlphabetical})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{crafts.ID, cafe.ID, bakery.ID}, ids(alphabetical))

	found, err := businesses.Explore(ctx, entity.ExploreFilter{Name: "panaderia", Category: "todas"})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{bakery.ID}, ids(found))

	food, err := businesses.Explore(ctx, entity.ExploreFilter{Category: string(entity.CategoryFood)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{bakery.ID, cafe.ID}, ids(food))
}

func TestBusinessRepository_DeactivateTwice(t *testing.T) {
	store, owner := newTestStore(t)
	businesses := NewBusinessRepository(store)
	ctx := context.Background()

	b := &entity.Business{Name: "Tienda", Category: entity.CategoryOther, OwnerUserID: owner.ID, Active: true}
	require.NoError(t, businesses.Create(ctx, b))

	require.NoError(t, businesses.Deactivate(ctx, b.ID))
	assert.ErrorIs(t, businesses.Deactivate(ctx, b.ID), repository.ErrBusinessNotFound)

	inactive, err := businesses.FindByIDIncludingInactive(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, inactive.Active)
}

func TestRatingRepository_DuplicateAndStats(t *testing.T) {
	store, owner := newTestStore(t)
	ctx := context.Background()

	b := &entity.Business{Name: "Café X", Category: entity.CategoryFood, OwnerUserID: owner.ID, Active: true}
	require.NoError(t, NewBusinessRepository(store).Create(ctx, b))

	ratings := NewRatingRepository(store)
	rater := uuid.New()
	require.NoError(t, ratings.Create(ctx, &entity.Rating{BusinessID: b.ID, RaterUserID: rater, Score: 4}))
	assert.ErrorIs(t, ratings.Create(ctx, &entity.Rating{BusinessID: b.ID, RaterUserID: rater, Score: 1}),
		repository.ErrDuplicateRating)
	require.NoError(t, ratings.Create(ctx, &entity.Rating{BusinessID: b.ID, RaterUserID: uuid.New(), Score: 2}))

	count, sum, err := ratings.StatsForBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 6, sum)

	list, err := ratings.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].Score, "newest first")
}

func newOtherOwner(t *testing.T, store *Store) *entity.User {
	t.Helper()

	other := &entity.User{Email: "otra@example.com", Phone: "+56900000009", FirstName: "Otra"}
	require.NoError(t, NewUserRepository(store).Create(context.Background(), other))

	return other
}

func TestBusinessRepository_ListByOwnerNewestFirst(t *testing.T) {
	store, owner := newTestStore(t)
	other := newOtherOwner(t, store)
	businesses := NewBusinessRepository(store)
	ctx := context.Background()

	create := func(name string, ownerID uuid.UUID) *entity.Business {
		b := &entity.Business{Name: name, Category: entity.CategoryFood, OwnerUserID: ownerID, Active: true}
		require.NoError(t, businesses.Create(ctx, b))

		return b
	}

	first := create("Primero", owner.ID)
	second := create("Segundo", owner.ID)
	create("Ajeno", other.ID)
	closed := create("Cerrado", owner.ID)
	third := create("Tercero", owner.ID)
	require.NoError(t, businesses.Deactivate(ctx, closed.ID))

	mine, err := businesses.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)

	got := make([]uuid.UUID, 0, len(mine))
	for _, b := range mine {
		got = append(got, b.ID)
	}
	assert.Equal(t, []uuid.UUID{third.ID, second.ID, first.ID}, got)
}

func TestOfferingRepository_ListByOwnerNewestFirst(t *testing.T) {
	store, owner := newTestStore(t)
	businesses := NewBusinessRepository(store)
	offerings := NewOfferingRepository(store)
	ctx := context.Background()

	bakery := &entity.Business{Name: "Panadería", Category: entity.CategoryFood, OwnerUserID: owner.ID, Active: true}
	require.NoError(t, businesses.Create(ctx, bakery))
	other := &entity.Business{Name: "Ajeno", Category: entity.CategoryFood, OwnerUserID: newOtherOwner(t, store).ID, Active: true}
	require.NoError(t, businesses.Create(ctx, other))

	create := func(name string, businessID uuid.UUID) *entity.Offering {
		o := &entity.Offering{Name: name, Kind: entity.OfferingKindProduct, BusinessID: businessID, Active: true}
		require.NoError(t, offerings.Create(ctx, o))

		return o
	}

	bread := create("Pan", bakery.ID)
	create("Ajeno", other.ID)
	cake := create("Torta", bakery.ID)
	removed := create("Retirado", bakery.ID)
	require.NoError(t, offerings.Deactivate(ctx, removed.ID))

	mine, err := offerings.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)

	got := make([]uuid.UUID, 0, len(mine))
	for _, o := range mine {
		got = append(got, o.ID)
	}
	assert.Equal(t, []uuid.UUID{cake.ID, bread.ID}, got)
}
