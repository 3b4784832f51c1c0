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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	uploader  imageUploader
	logger    *slog.Logger
	now       func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ImageStore service.ImageStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		uploader:  newImageUploader(params.ImageStore, params.Config.MaxUploadBytes()),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.String("user_id", userID.String()))

	var birthDate *time.Time
	if input.BirthDate != nil {
		parsed, err := parseBirthDate(*input.BirthDate, srv.now())
		if err != nil {
			return nil, err
		}
		birthDate = &parsed
	}

	if input.Gender != nil && !entity.Gender(*input.Gender).IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("gender"))
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		if input.Phone != nil {
			phone := strings.TrimSpace(*input.Phone)
			if phone != found.Phone {
				if err := ensureUnused(ctx, userRepo.FindByPhone, phone, domainerrors.ErrPhoneAlreadyExists); err != nil {
					return err
				}
			}
			found.Phone = phone
		}
		if input.FirstName != nil {
			found.FirstName = strings.TrimSpace(*input.FirstName)
		}
		if input.LastName != nil {
			found.LastName = strings.TrimSpace(*input.LastName)
		}
		if birthDate != nil {
			found.BirthDate = *birthDate
		}
		if input.Gender != nil {
			found.Gender = entity.Gender(*input.Gender)
		}
		found.UpdatedAt = srv.now().UTC()

		if err := userRepo.Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// UpdatePhoto uploads a profile photo and stores its URL on the account.
func (srv *profileService) UpdatePhoto(ctx context.Context, userID uuid.UUID, upload *usecase.ImageUpload) (*entity.User, error) {
	url, err := srv.uploader.upload(ctx, "users/"+userID.String(), upload)
	if err != nil {
		srv.log(ctx).Warn("Profile photo upload failed", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, err
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		found.PhotoURL = url
		found.UpdatedAt = srv.now().UTC()
		if err := userRepo.Update(ctx, found); err != nil {
			return translateRepoError(err, "failed to update user photo")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user photo")
	}

	return user, nil
}
