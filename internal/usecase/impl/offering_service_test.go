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

type offeringServiceFixtures struct {
	repoFixtures
	service    usecase.OfferingUsecase
	imageStore *mockService.MockImageStore
}

func createTestOfferingService(t *testing.T) offeringServiceFixtures {
	repos := newRepoFixtures(t)
	imageStore := mockService.NewMockImageStore(t)

	return offeringServiceFixtures{
		repoFixtures: repos,
		imageStore:   imageStore,
		service: NewOfferingService(OfferingServiceParams{
			TxManager:  repos.txManager,
			ImageStore: imageStore,
			Config:     &config.Config{},
			Logger:     discardLogger(),
		}),
	}
}

func TestOfferingService_Create(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := activeBusiness(ownerID)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.offeringRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offering")).Return(nil)

	offering, err := fx.service.Create(ctx, ownerID, &usecase.CreateOfferingInput{BusinessID: business.ID, Name: "Medialunas", Kind: "product"})

	require.NoError(t, err)
	assert.Equal(t, entity.OfferingKindProduct, offering.Kind)
	assert.True(t, offering.Active)
}

func TestOfferingService_Create_InvalidKind(t *testing.T) {
	fx := createTestOfferingService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreateOfferingInput{BusinessID: uuid.New(), Name: "X", Kind: "alquiler"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOfferingKind))
}

func TestOfferingService_Create_ForeignBusiness(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	business := activeBusiness(uuid.New())

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateOfferingInput{BusinessID: business.ID, Name: "X", Kind: "servicio"})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fx.offeringRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOfferingService_Update_WalksToBusinessOwner(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	business := activeBusiness(uuid.New())
	offering := &entity.Offering{ID: uuid.New(), BusinessID: business.ID, Kind: entity.OfferingKindService, Active: true}

	fx.offeringRepo.EXPECT().FindByID(ctx, offering.ID).Return(offering, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Update(ctx, uuid.New(), offering.ID, &usecase.UpdateOfferingInput{Name: "Y", Kind: "servicio"})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fx.offeringRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOfferingService_Delete_IgnoresBusinessState(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := activeBusiness(ownerID)
	business.Active = false
	offering := &entity.Offering{ID: uuid.New(), BusinessID: business.ID, Active: true}

	fx.offeringRepo.EXPECT().FindByID(ctx, offering.ID).Return(offering, nil)
	fx.businessRepo.EXPECT().FindByIDIncludingInactive(ctx, business.ID).Return(business, nil)
	fx.offeringRepo.EXPECT().Deactivate(ctx, offering.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, ownerID, offering.ID))
}

func TestOfferingService_Delete_Missing(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	offeringID := uuid.New()

	fx.offeringRepo.EXPECT().FindByID(ctx, offeringID).Return(nil, repository.ErrOfferingNotFound)

	err := fx.service.Delete(ctx, uuid.New(), offeringID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOfferingService_UpdateImage_RejectsExtension(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := activeBusiness(ownerID)
	offering := &entity.Offering{ID: uuid.New(), BusinessID: business.ID, Active: true}

	fx.offeringRepo.EXPECT().FindByID(ctx, offering.ID).Return(offering, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.UpdateImage(ctx, ownerID, offering.ID, &usecase.ImageUpload{Filename: "menu.pdf", Size: 10, Body: bytesReader("pdf")})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidImage))
	fx.imageStore.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOfferingService_UpdateImage_Success(t *testing.T) {
	fx := createTestOfferingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := activeBusiness(ownerID)
	offering := &entity.Offering{ID: uuid.New(), BusinessID: business.ID, Active: true}

	fx.offeringRepo.EXPECT().FindByID(ctx, offering.ID).Return(offering, nil)
	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.imageStore.EXPECT().Store(ctx, mock.Anything, mock.Anything, int64(3), "image/jpeg").Return("http://cdn/o.jpg", nil)
	fx.offeringRepo.EXPECT().Update(ctx, offering).Return(nil)

	updated, err := fx.service.UpdateImage(ctx, ownerID, offering.ID, &usecase.ImageUpload{Filename: "o.jpeg", Size: 3, Body: bytesReader("jpg")})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/o.jpg", updated.ImageURL)
}
