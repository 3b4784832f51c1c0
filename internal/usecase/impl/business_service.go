package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"comerciaya/config"
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

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager repository.TransactionManager
	uploader  imageUploader
	qrCode    service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ImageStore service.ImageStore
	QRCode     service.QRCodeService
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager: params.TxManager,
		uploader:  newImageUploader(params.ImageStore, params.Config.MaxUploadBytes()),
		qrCode:    params.QRCode,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func parseCategory(raw string) (entity.Category, error) {
	category := entity.Category(strings.TrimSpace(raw))
	if !category.IsValid() {
		return "", errors.WithStack(domainerrors.ErrInvalidCategory.WithDetails(raw))
	}

	return category, nil
}

// Create lists a new business owned by ownerID with empty rating statistics.
func (srv *businessService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	category, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	business := &entity.Business{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		OwnerUserID: ownerID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBusinessRepository().Create(ctx, business); err != nil {
			return translateRepoError(err, "failed to create business")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created", slog.String("business_id", business.ID.String()), slog.String("owner_id", ownerID.String()))

	return business, nil
}

// Update rewrites the owner-editable fields. The category is validated again.
func (srv *businessService) Update(ctx context.Context, ownerID, businessID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	category, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	var business *entity.Business
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnedBusiness(ctx, repoFactory, businessID, ownerID)
		if err != nil {
			return err
		}

		found.Name = strings.TrimSpace(input.Name)
		found.Description = strings.TrimSpace(input.Description)
		found.Category = category
		found.UpdatedAt = srv.now().UTC()

		if err := repoFactory.NewBusinessRepository().Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update business")
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// Delete deactivates the business and every offering under it in one transaction.
func (srv *businessService) Delete(ctx context.Context, ownerID, businessID uuid.UUID) error {
	var deactivated int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedBusiness(ctx, repoFactory, businessID, ownerID); err != nil {
			return err
		}

		if err := repoFactory.NewBusinessRepository().Deactivate(ctx, businessID); err != nil {
			return translateRepoError(err, "failed to deactivate business")
		}

		n, err := repoFactory.NewOfferingRepository().DeactivateByBusiness(ctx, businessID)
		if err != nil {
			return translateRepoError(err, "failed to deactivate offerings")
		}
		deactivated = n

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	srv.log(ctx).Info("Business deactivated",
		slog.String("business_id", businessID.String()),
		slog.Int64("offerings_deactivated", deactivated),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketplaceEvent{
		Type:        constants.EventBusinessDeactivated,
		BusinessID:  businessID.String(),
		ActorUserID: ownerID.String(),
	})

	return nil
}

// Get returns an active business.
func (srv *businessService) Get(ctx context.Context, businessID uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBusinessRepository().FindByID(ctx, businessID)
		if err != nil {
			return translateRepoError(err, "failed to find business")
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business")
	}

	return business, nil
}

// ListMine returns the caller's active businesses.
func (srv *businessService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var businesses []*entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBusinessRepository().ListByOwner(ctx, ownerID)
		if err != nil {
			return translateRepoError(err, "failed to list businesses by owner")
		}
		businesses = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own businesses")
	}

	return businesses, nil
}

// Explore searches active businesses. An unknown category is rejected
// unless it is the "all" sentinel.
func (srv *businessService) Explore(ctx context.Context, input *usecase.ExploreInput) ([]*entity.Business, error) {
	filter := entity.ExploreFilter{
		Name: strings.TrimSpace(input.Name),
		Sort: entity.ParseSortMode(input.Sort),
	}
	if !entity.IsAllCategories(input.Category) {
		category, err := parseCategory(input.Category)
		if err != nil {
			return nil, err
		}
		filter.Category = string(category)
	}

	var businesses []*entity.Business
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBusinessRepository().Explore(ctx, filter)
		if err != nil {
			return translateRepoError(err, "failed to explore businesses")
		}
		businesses = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to explore businesses")
	}

	return businesses, nil
}

// Categories lists the closed category set.
func (srv *businessService) Categories() []entity.Category {
	return append([]entity.Category(nil), entity.Categories...)
}

// UpdateImage checks ownership, then uploads and stores the business image.
func (srv *businessService) UpdateImage(ctx context.Context, ownerID, businessID uuid.UUID, upload *usecase.ImageUpload) (*entity.Business, error) {
	if _, err := srv.findOwned(ctx, ownerID, businessID); err != nil {
		return nil, err
	}

	url, err := srv.uploader.upload(ctx, "businesses/"+businessID.String(), upload)
	if err != nil {
		srv.log(ctx).Warn("Business image upload failed", slog.String("business_id", businessID.String()), slog.Any("error", err))

		return nil, err
	}

	var business *entity.Business
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnedBusiness(ctx, repoFactory, businessID, ownerID)
		if err != nil {
			return err
		}

		found.ImageURL = url
		found.UpdatedAt = srv.now().UTC()
		if err := repoFactory.NewBusinessRepository().Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update business image")
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update business image")
	}

	return business, nil
}

func (srv *businessService) findOwned(ctx context.Context, ownerID, businessID uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnedBusiness(ctx, repoFactory, businessID, ownerID)
		if err != nil {
			return err
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check business ownership")
	}

	return business, nil
}

// QRCode renders a PNG that links to the public page of an active business.
func (srv *businessService) QRCode(ctx context.Context, businessID uuid.UUID) ([]byte, error) {
	if _, err := srv.Get(ctx, businessID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateBusinessQR(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate business QR code")
	}

	return png, nil
}
