// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"comerciaya/internal/domain/entity"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/errors"
	"comerciaya/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain.UserRepository interface.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", strings.ToLower(email))
}

func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. Unique violations map to ErrEmailTaken or ErrPhoneTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueUserError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile fields. Email and password hash are left untouched.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("first_name", "last_name", "birth_date", "gender", "phone", "photo_url", "updated_at").
		Updates(fromUserDomain(user))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return uniqueUserError(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func uniqueUserError(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "phone") {
		return repository.ErrPhoneTaken
	}

	return repository.ErrEmailTaken
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		BirthDate:    data.BirthDate,
		Gender:       entity.Gender(data.Gender),
		Phone:        data.Phone,
		PhotoURL:     data.PhotoURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        strings.ToLower(data.Email),
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		BirthDate:    data.BirthDate,
		Gender:       string(data.Gender),
		Phone:        data.Phone,
		PhotoURL:     data.PhotoURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
