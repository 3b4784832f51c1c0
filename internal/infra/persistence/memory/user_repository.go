package memory

import (
	"context"
	"strings"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	s session
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	r.s.read(func(d *dataset) {
		if user, ok := d.users[id]; ok {
			found = &user
		}
	})
	if found == nil {
		return nil, repository.ErrUserNotFound
	}

	return found, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u entity.User) bool { return u.Email == strings.ToLower(email) })
}

func (r *userRepository) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return r.findBy(func(u entity.User) bool { return u.Phone == phone })
}

func (r *userRepository) findBy(match func(entity.User) bool) (*entity.User, error) {
	var found *entity.User
	r.s.read(func(d *dataset) {
		for _, user := range d.users {
			if match(user) {
				found = &user

				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrUserNotFound
	}

	return found, nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.s.write(func(d *dataset) error {
		user.Email = strings.ToLower(user.Email)
		if err := checkUserUnique(d, user); err != nil {
			return err
		}
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		now := r.s.now()
		user.CreatedAt = now
		user.UpdatedAt = now
		d.users[user.ID] = *user

		return nil
	})
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.users[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}
		if err := checkUserUnique(d, user); err != nil {
			return err
		}

		stored.FirstName = user.FirstName
		stored.LastName = user.LastName
		stored.BirthDate = user.BirthDate
		stored.Gender = user.Gender
		stored.Phone = user.Phone
		stored.PhotoURL = user.PhotoURL
		stored.UpdatedAt = r.s.now()
		d.users[user.ID] = stored
		user.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func checkUserUnique(d *dataset, user *entity.User) error {
	for id, other := range d.users {
		if id == user.ID {
			continue
		}
		if user.Email != "" && other.Email == user.Email {
			return repository.ErrEmailTaken
		}
		if user.Phone != "" && other.Phone == user.Phone {
			return repository.ErrPhoneTaken
		}
	}

	return nil
}
