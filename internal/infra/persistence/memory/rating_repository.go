package memory

import (
	"context"
	"sort"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"

	"github.com/google/uuid"
)

type ratingRepository struct {
	s session
}

func (r *ratingRepository) Create(_ context.Context, rating *entity.Rating) error {
	return r.s.write(func(d *dataset) error {
		if _, ok := d.businesses[rating.BusinessID]; !ok {
			return repository.ErrBusinessNotFound
		}
		for _, other := range d.ratings {
			if other.BusinessID == rating.BusinessID && other.RaterUserID == rating.RaterUserID {
				return repository.ErrDuplicateRating
			}
		}
		if rating.ID == uuid.Nil {
			rating.ID = uuid.New()
		}
		now := r.s.now()
		rating.CreatedAt = now
		rating.UpdatedAt = now
		d.ratings[rating.ID] = *rating

		return nil
	})
}

func (r *ratingRepository) Update(_ context.Context, rating *entity.Rating) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.ratings[rating.ID]
		if !ok {
			return repository.ErrRatingNotFound
		}
		stored.Score = rating.Score
		stored.Comment = rating.Comment
		stored.UpdatedAt = r.s.now()
		d.ratings[rating.ID] = stored
		rating.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (r *ratingRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(d *dataset) error {
		if _, ok := d.ratings[id]; !ok {
			return repository.ErrRatingNotFound
		}
		delete(d.ratings, id)

		return nil
	})
}

func (r *ratingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Rating, error) {
	return r.findBy(func(rt entity.Rating) bool { return rt.ID == id })
}

func (r *ratingRepository) FindByBusinessAndRater(_ context.Context, businessID, raterID uuid.UUID) (*entity.Rating, error) {
	return r.findBy(func(rt entity.Rating) bool {
		return rt.BusinessID == businessID && rt.RaterUserID == raterID
	})
}

func (r *ratingRepository) findBy(match func(entity.Rating) bool) (*entity.Rating, error) {
	var found *entity.Rating
	r.s.read(func(d *dataset) {
		for _, rating := range d.ratings {
			if match(rating) {
				found = &rating

				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrRatingNotFound
	}

	return found, nil
}

func (r *ratingRepository) ListByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Rating, error) {
	ratings := []*entity.Rating{}
	r.s.read(func(d *dataset) {
		for _, rating := range d.ratings {
			if rating.BusinessID == businessID {
				ratings = append(ratings, &rating)
			}
		}
	})
	sort.SliceStable(ratings, func(i, j int) bool {
		if !ratings[i].CreatedAt.Equal(ratings[j].CreatedAt) {
			return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
		}

		return ratings[i].ID.String() < ratings[j].ID.String()
	})

	return ratings, nil
}

func (r *ratingRepository) StatsForBusiness(_ context.Context, businessID uuid.UUID) (int, int, error) {
	var count, sum int
	r.s.read(func(d *dataset) {
		for _, rating := range d.ratings {
			if rating.BusinessID == businessID {
				count++
				sum += rating.Score
			}
		}
	})

	return count, sum, nil
}
