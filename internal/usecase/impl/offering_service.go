package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"comerciaya/config"
	deliverycontext "comerciaya/internal/delivery/context"
	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// offeringService implements the OfferingUsecase interface.
type offeringService struct {
	txManager repository.TransactionManager
	uploader  imageUploader
	logger    *slog.Logger
	now       func() time.Time
}

// OfferingServiceParams holds dependencies for OfferingService, injected by Fx.
type OfferingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ImageStore service.ImageStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOfferingService is the constructor for offeringService.
func NewOfferingService(params OfferingServiceParams) usecase.OfferingUsecase {
	return &offeringService{
		txManager: params.TxManager,
		uploader:  newImageUploader(params.ImageStore, params.Config.MaxUploadBytes()),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *offeringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func parseOfferingKind(raw string) (entity.OfferingKind, error) {
	kind := entity.ParseOfferingKind(raw)
	if !kind.IsValid() {
		return "", errors.WithStack(domainerrors.ErrInvalidOfferingKind.WithDetails(raw))
	}

	return kind, nil
}

// loadOwnedOffering resolves an active offering and checks that the requester
// owns its business. With activeBusiness false the business state is ignored.
func loadOwnedOffering(ctx context.Context, repoFactory repository.RepositoryFactory, offeringID, userID uuid.UUID, activeBusiness bool) (*entity.Offering, error) {
	offering, err := repoFactory.NewOfferingRepository().FindByID(ctx, offeringID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find offering")
	}

	if activeBusiness {
		if _, err := loadOwnedBusiness(ctx, repoFactory, offering.BusinessID, userID); err != nil {
			return nil, err
		}

		return offering, nil
	}

	business, err := repoFactory.NewBusinessRepository().FindByIDIncludingInactive(ctx, offering.BusinessID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find offering business")
	}
	if !business.IsOwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "offering not owned by requester")
	}

	return offering, nil
}

// Create adds an offering to a business owned by ownerID.
func (srv *offeringService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateOfferingInput) (*entity.Offering, error) {
	kind, err := parseOfferingKind(input.Kind)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	offering := &entity.Offering{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Kind:        kind,
		BusinessID:  input.BusinessID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedBusiness(ctx, repoFactory, input.BusinessID, ownerID); err != nil {
			return err
		}

		if err := repoFactory.NewOfferingRepository().Create(ctx, offering); err != nil {
			return translateRepoError(err, "failed to create offering")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offering")
	}

	srv.log(ctx).Info("Offering created", slog.String("offering_id", offering.ID.String()), slog.String("business_id", offering.BusinessID.String()))

	return offering, nil
}

// Update rewrites name, description and kind.
func (srv *offeringService) Update(ctx context.Context, ownerID, offeringID uuid.UUID, input *usecase.UpdateOfferingInput) (*entity.Offering, error) {
	kind, err := parseOfferingKind(input.Kind)
	if err != nil {
		return nil, err
	}

	var offering *entity.Offering
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnedOffering(ctx, repoFactory, offeringID, ownerID, true)
		if err != nil {
			return err
		}

		found.Name = strings.TrimSpace(input.Name)
		found.Description = strings.TrimSpace(input.Description)
		found.Kind = kind
		found.UpdatedAt = srv.now().UTC()

		if err := repoFactory.NewOfferingRepository().Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update offering")
		}
		offering = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update offering")
	}

	return offering, nil
}

// Delete deactivates one offering. Ownership is checked against its business
// whether or not that business is still active.
func (srv *offeringService) Delete(ctx context.Context, ownerID, offeringID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedOffering(ctx, repoFactory, offeringID, ownerID, false); err != nil {
			return err
		}

		if err := repoFactory.NewOfferingRepository().Deactivate(ctx, offeringID); err != nil {
			return translateRepoError(err, "failed to deactivate offering")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete offering")
	}

	srv.log(ctx).Info("Offering deactivated", slog.String("offering_id", offeringID.String()))

	return nil
}

// Get returns an active offering.
func (srv *offeringService) Get(ctx context.Context, offeringID uuid.UUID) (*entity.Offering, error) {
	var offering *entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOfferingRepository().FindByID(ctx, offeringID)
		if err != nil {
			return translateRepoError(err, "failed to find offering")
		}
		offering = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offering")
	}

	return offering, nil
}

// ListByBusiness lists the active offerings of an active business.
func (srv *offeringService) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offering, error) {
	var offerings []*entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewBusinessRepository().FindByID(ctx, businessID); err != nil {
			return translateRepoError(err, "failed to find business")
		}

		found, err := repoFactory.NewOfferingRepository().ListByBusiness(ctx, businessID)
		if err != nil {
			return translateRepoError(err, "failed to list offerings")
		}
		offerings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business offerings")
	}

	return offerings, nil
}

// ListMine lists the active offerings across the caller's active businesses.
func (srv *offeringService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offering, error) {
	var offerings []*entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOfferingRepository().ListByOwner(ctx, ownerID)
		if err != nil {
			return translateRepoError(err, "failed to list offerings by owner")
		}
		offerings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own offerings")
	}

	return offerings, nil
}

// UpdateImage checks ownership, then uploads and stores the offering image.
func (srv *offeringService) UpdateImage(ctx context.Context, ownerID, offeringID uuid.UUID, upload *usecase.ImageUpload) (*entity.Offering, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := loadOwnedOffering(ctx, repoFactory, offeringID, ownerID, true)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check offering ownership")
	}

	url, err := srv.uploader.upload(ctx, "offerings/"+offeringID.String(), upload)
	if err != nil {
		srv.log(ctx).Warn("Offering image upload failed", slog.String("offering_id", offeringID.String()), slog.Any("error", err))

		return nil, err
	}

	var offering *entity.Offering
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadOwnedOffering(ctx, repoFactory, offeringID, ownerID, true)
		if err != nil {
			return err
		}

		found.ImageURL = url
		found.UpdatedAt = srv.now().UTC()
		if err := repoFactory.NewOfferingRepository().Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update offering image")
		}
		offering = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update offering image")
	}

	return offering, nil
}
