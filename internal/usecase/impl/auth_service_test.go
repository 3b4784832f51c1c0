package impl

import (
	"context"
	"testing"
	"time"

	"comerciaya/config"
	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/domain/service"
	mockService "comerciaya/internal/mocks/service"
	"comerciaya/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	repoFixtures
	service      usecase.AuthUsecase
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	revoker      *mockService.MockTokenRevoker
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repos := newRepoFixtures(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	revoker := mockService.NewMockTokenRevoker(t)

	return authServiceFixtures{
		repoFixtures: repos,
		hasher:       hasher,
		tokenService: tokenService,
		revoker:      revoker,
		service: NewAuthService(AuthServiceParams{
			TxManager:    repos.txManager,
			Hasher:       hasher,
			TokenService: tokenService,
			Revoker:      revoker,
			Config:       &config.Config{},
			Logger:       discardLogger(),
		}),
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:     "  Ana@Example.com ",
		Password:  "secreto123",
		FirstName: "Ana",
		LastName:  "Pérez",
		BirthDate: "1990-04-12",
		Gender:    "Mujer",
		Phone:     "+5491122334455",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secreto123").Return("hashed", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByPhone(ctx, "+5491122334455").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.GenderFemale, user.Gender)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), user.BirthDate)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_PhoneTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByPhone(ctx, mock.Anything).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.True(t, errors.Is(err, domainerrors.ErrPhoneAlreadyExists))
}

func TestAuthService_Register_RejectsInput(t *testing.T) {
	tests := map[string]struct {
		mutate func(*usecase.RegisterInput)
		want   error
	}{
		"short password": {func(in *usecase.RegisterInput) { in.Password = "abc" }, domainerrors.ErrPasswordStrength},
		"future birth":   {func(in *usecase.RegisterInput) { in.BirthDate = "2999-01-01" }, domainerrors.ErrValidationFailed},
		"bad birth":      {func(in *usecase.RegisterInput) { in.BirthDate = "12/04/1990" }, domainerrors.ErrValidationFailed},
		"bad gender":     {func(in *usecase.RegisterInput) { in.Gender = "Otro" }, domainerrors.ErrValidationFailed},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := validRegisterInput()
			tc.mutate(input)

			_, err := fx.service.Register(context.Background(), input)

			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}
	expiresAt := time.Now().Add(24 * time.Hour)

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("secreto123", "hashed").Return(true)
		fx.tokenService.EXPECT().Issue(user.ID, user.Email).Return("token", expiresAt, nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ANA@example.com", Password: "secreto123"})

		require.NoError(t, err)
		assert.Equal(t, "token", out.Token)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nadie@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	claims := &service.Claims{
		UserID: userID,
		Email:  "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t.Run("missing token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(context.Background(), " ")

		assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
	})

	t.Run("expired token passes through", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Verify("old").Return(nil, errors.WithStack(domainerrors.ErrTokenExpired))

		_, err := fx.service.Authenticate(context.Background(), "old")

		assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	})

	t.Run("revoked token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.tokenService.EXPECT().Verify("tok").Return(claims, nil)
		fx.revoker.EXPECT().IsRevoked(ctx, "jti-1").Return(true, nil)

		_, err := fx.service.Authenticate(ctx, "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrTokenRevoked))
	})

	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.tokenService.EXPECT().Verify("tok").Return(claims, nil)
		fx.revoker.EXPECT().IsRevoked(ctx, "jti-1").Return(false, nil)

		identity, err := fx.service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, entity.Identity{UserID: userID, Email: "ana@example.com", TokenID: "jti-1", ExpiresAt: expiresAt}, *identity)
	})
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := entity.Identity{UserID: uuid.New(), TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	fx.revoker.EXPECT().Revoke(ctx, "jti-1", identity.ExpiresAt).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, identity))
}

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordStrengthConfig{MinLength: 8, RequireUppercase: true, RequireNumbers: true, RequireSpecial: true}

	assert.NoError(t, validatePassword(policy, "Segura#2024"))

	err := validatePassword(policy, "debil")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "too short")
	assert.Contains(t, appErr.Details(), "needs a number")
}
