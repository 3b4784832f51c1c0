package impl

import (
	"context"

	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/errors"

	"github.com/google/uuid"
)

// requireOwnership admits only the owner of an active business. Missing,
// inactive and foreign businesses all fail with the same not-found error.
func requireOwnership(business *entity.Business, userID uuid.UUID) error {
	if business == nil || !business.Active || !business.IsOwnedBy(userID) {
		return errors.Wrap(domainerrors.ErrNotFound, "business not found or not owned by requester")
	}

	return nil
}

// requireNotOwner rejects a rating by the owner of the rated business.
func requireNotOwner(business *entity.Business, userID uuid.UUID) error {
	if business.IsOwnedBy(userID) {
		return errors.Wrap(domainerrors.ErrSelfRating, "owner cannot rate own business")
	}

	return nil
}

// loadOwnedBusiness finds an active business and checks the requester owns it.
func loadOwnedBusiness(ctx context.Context, factory repository.RepositoryFactory, businessID, userID uuid.UUID) (*entity.Business, error) {
	business, err := factory.NewBusinessRepository().FindByID(ctx, businessID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find business")
	}

	if err := requireOwnership(business, userID); err != nil {
		return nil, err
	}

	return business, nil
}

// translateRepoError maps repository sentinels onto domain errors. Errors that
// already are domain errors pass through; anything else is a database failure.
func translateRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrBusinessNotFound),
		errors.Is(err, repository.ErrOfferingNotFound),
		errors.Is(err, repository.ErrRatingNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrNotFound, message)
	case errors.Is(err, repository.ErrDuplicateRating):
		return errors.Wrap(domainerrors.ErrDuplicateRating, message)
	case errors.Is(err, repository.ErrEmailTaken):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, message)
	case errors.Is(err, repository.ErrPhoneTaken):
		return errors.Wrap(domainerrors.ErrPhoneAlreadyExists, message)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}
