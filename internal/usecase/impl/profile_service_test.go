package impl

import (
	"context"
	"testing"

	"comerciaya/config"
	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	mockService "comerciaya/internal/mocks/service"
	"comerciaya/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	repoFixtures
	service    usecase.ProfileUsecase
	imageStore *mockService.MockImageStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	repos := newRepoFixtures(t)
	imageStore := mockService.NewMockImageStore(t)

	return profileServiceFixtures{
		repoFixtures: repos,
		imageStore:   imageStore,
		service: NewProfileService(ProfileServiceParams{
			TxManager:  repos.txManager,
			ImageStore: imageStore,
			Config:     &config.Config{},
			Logger:     discardLogger(),
		}),
	}
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_AppliesFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FirstName: "Ana", Phone: "+541100", Gender: entity.GenderFemale}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		FirstName: strPtr(" Ana María "),
		Gender:    strPtr("Sin Especificar"),
		Phone:     strPtr("+541100"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.FirstName)
	assert.Equal(t, entity.GenderUnspecified, updated.Gender)
	fx.userRepo.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_PhoneTaken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Phone: "+541100"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().FindByPhone(ctx, "+541199").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Phone: strPtr("+541199")})

	assert.True(t, errors.Is(err, domainerrors.ErrPhoneAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_UpdatePhoto(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.imageStore.EXPECT().
		Store(ctx, mock.MatchedBy(func(key string) bool { return len(key) > len("users/") }), mock.Anything, int64(3), "image/png").
		Return("http://cdn/u.png", nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdatePhoto(ctx, user.ID, &usecase.ImageUpload{Filename: "me.png", Size: 3, Body: bytesReader("png")})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/u.png", updated.PhotoURL)
}
