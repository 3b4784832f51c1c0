// Package impl contains the application-specific business rules implementations.
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

// birthDateLayout is the wire format of birth dates.
const birthDateLayout = time.DateOnly

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	revoker      service.TokenRevoker
	policy       config.PasswordStrengthConfig
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Revoker      service.TokenRevoker
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		revoker:      params.Revoker,
		policy:       params.Config.PasswordPolicy(),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account after checking email and phone are unused.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)

	if err := validatePassword(srv.policy, input.Password); err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", email))

		return nil, err
	}

	birthDate, err := parseBirthDate(input.BirthDate, srv.now())
	if err != nil {
		return nil, err
	}

	gender := entity.Gender(input.Gender)
	if !gender.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("gender"))
	}

	// Hash outside the transaction, bcrypt is CPU-bound.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		BirthDate:    birthDate,
		Gender:       gender,
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureUnused(ctx, userRepo.FindByEmail, user.Email, domainerrors.ErrUserAlreadyExists); err != nil {
			return err
		}
		if err := ensureUnused(ctx, userRepo.FindByPhone, user.Phone, domainerrors.ErrPhoneAlreadyExists); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return translateRepoError(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// ensureUnused fails with conflict when find returns a user for value.
func ensureUnused(ctx context.Context, find func(context.Context, string) (*entity.User, error), value string, conflict error) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return errors.WithStack(conflict)
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to check user uniqueness")
	}
}

// Login checks the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("user_id", user.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.LoginOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves the identity behind a bearer token.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	revoked, err := srv.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, errors.WithStack(domainerrors.ErrTokenRevoked)
	}

	identity := &entity.Identity{
		UserID:  claims.UserID,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}

// Logout revokes the token until its natural expiry.
func (srv *authService) Logout(ctx context.Context, identity entity.Identity) error {
	if err := srv.revoker.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	srv.log(ctx).Info("User logged out", slog.String("user_id", identity.UserID.String()))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseBirthDate accepts YYYY-MM-DD dates that are not in the future.
func parseBirthDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.Parse(birthDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("birthDate"))
	}
	if date.After(now) {
		return time.Time{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("birthDate"))
	}

	return date, nil
}
