package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"comerciaya/internal/domain/repository"
	mockRepo "comerciaya/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// repoFixtures wires a mock transaction manager to a factory of mock repositories.
type repoFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessRepository
	offeringRepo *mockRepo.MockOfferingRepository
	ratingRepo   *mockRepo.MockRatingRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	f := repoFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		offeringRepo: mockRepo.NewMockOfferingRepository(t),
		ratingRepo:   mockRepo.NewMockRatingRepository(t),
	}

	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	f.factory.EXPECT().NewBusinessRepository().Return(f.businessRepo).Maybe()
	f.factory.EXPECT().NewOfferingRepository().Return(f.offeringRepo).Maybe()
	f.factory.EXPECT().NewRatingRepository().Return(f.ratingRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}
