package impl

import (
	"context"
	"sync"
	"testing"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/infra/persistence/memory"
	"comerciaya/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService_ConcurrentCreatesKeepStatsConsistent(t *testing.T) {
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, memory.NewUserRepository(store).Create(ctx, &entity.User{ID: ownerID, Email: "duena@example.com", Phone: "+5491100000000"}))
	business := &entity.Business{ID: uuid.New(), Name: "Café X", Category: entity.CategoryFood, OwnerUserID: ownerID, Active: true}
	require.NoError(t, memory.NewBusinessRepository(store).Create(ctx, business))

	svc := NewRatingService(RatingServiceParams{TxManager: txManager, Logger: discardLogger()})

	const raters = 40
	var wg sync.WaitGroup
	errs := make(chan error, raters)
	for i := range raters {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := svc.Create(ctx, uuid.New(), &usecase.CreateRatingInput{BusinessID: business.ID, Score: score})
			errs <- err
		}(i%5 + 1)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := memory.NewBusinessRepository(store).FindByID(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, raters, stored.RatingCount)
	assert.Equal(t, 3.0, stored.RatingAverage)
}
