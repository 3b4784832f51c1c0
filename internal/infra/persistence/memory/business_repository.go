package memory

import (
	"context"
	"sort"
	"strings"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"
	"comerciaya/internal/util"

	"github.com/google/uuid"
)

type businessRepository struct {
	s session
}

func (r *businessRepository) Create(_ context.Context, business *entity.Business) error {
	return r.s.write(func(d *dataset) error {
		if _, ok := d.users[business.OwnerUserID]; !ok {
			return repository.ErrUserNotFound
		}
		if business.ID == uuid.Nil {
			business.ID = uuid.New()
		}
		business.SearchName = util.FoldSearchText(business.Name)
		now := r.s.now()
		business.CreatedAt = now
		business.UpdatedAt = now
		d.businesses[business.ID] = *business

		return nil
	})
}

func (r *businessRepository) Update(_ context.Context, business *entity.Business) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.businesses[business.ID]
		if !ok || !stored.Active {
			return repository.ErrBusinessNotFound
		}

		stored.Name = business.Name
		stored.SearchName = util.FoldSearchText(business.Name)
		stored.Description = business.Description
		stored.Category = business.Category
		stored.ImageURL = business.ImageURL
		stored.UpdatedAt = r.s.now()
		d.businesses[business.ID] = stored

		business.SearchName = stored.SearchName
		business.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (r *businessRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	return r.find(id, true)
}

func (r *businessRepository) FindByIDIncludingInactive(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	return r.find(id, false)
}

// FindByIDForUpdate needs no row lock here: transactions already hold the store lock.
func (r *businessRepository) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	return r.find(id, false)
}

func (r *businessRepository) find(id uuid.UUID, activeOnly bool) (*entity.Business, error) {
	var found *entity.Business
	r.s.read(func(d *dataset) {
		if business, ok := d.businesses[id]; ok && (business.Active || !activeOnly) {
			found = &business
		}
	})
	if found == nil {
		return nil, repository.ErrBusinessNotFound
	}

	return found, nil
}

func (r *businessRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	businesses := r.filter(func(b entity.Business) bool {
		return b.Active && b.OwnerUserID == ownerID
	})
	sort.SliceStable(businesses, func(i, j int) bool {
		return newerFirst(*businesses[i], *businesses[j])
	})

	return businesses, nil
}

func (r *businessRepository) Explore(_ context.Context, filter entity.ExploreFilter) ([]*entity.Business, error) {
	term := util.FoldSearchText(filter.Name)
	allCategories := entity.IsAllCategories(filter.Category)

	businesses := r.filter(func(b entity.Business) bool {
		if !b.Active {
			return false
		}
		if term != "" && !strings.Contains(b.SearchName, term) {
			return false
		}

		return allCategories || string(b.Category) == filter.Category
	})

	less := exploreLess(filter.Sort)
	sort.SliceStable(businesses, func(i, j int) bool {
		return less(businesses[i], businesses[j])
	})

	return businesses, nil
}

func (r *businessRepository) filter(keep func(entity.Business) bool) []*entity.Business {
	var businesses []*entity.Business
	r.s.read(func(d *dataset) {
		for _, business := range d.businesses {
			if keep(business) {
				businesses = append(businesses, &business)
			}
		}
	})
	if businesses == nil {
		businesses = []*entity.Business{}
	}

	return businesses
}

// exploreLess mirrors the ORDER BY of the SQL repository.
func exploreLess(mode entity.SortMode) func(a, b *entity.Business) bool {
	return func(a, b *entity.Business) bool {
		switch mode {
		case entity.SortRecent:
		case entity.SortAlphabetical:
			if a.SearchName != b.SearchName {
				return a.SearchName < b.SearchName
			}
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case entity.SortTopRated:
			if a.RatingAverage != b.RatingAverage {
				return a.RatingAverage > b.RatingAverage
			}
			if a.RatingCount != b.RatingCount {
				return a.RatingCount > b.RatingCount
			}
		default:
			if a.RatingCount != b.RatingCount {
				return a.RatingCount > b.RatingCount
			}
			if a.RatingAverage != b.RatingAverage {
				return a.RatingAverage > b.RatingAverage
			}
		}

		return newerFirst(*a, *b)
	}
}

func newerFirst(a, b entity.Business) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return a.ID.String() < b.ID.String()
}

func (r *businessRepository) UpdateRatingStats(_ context.Context, id uuid.UUID, stats entity.RatingStats) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.businesses[id]
		if !ok {
			return repository.ErrBusinessNotFound
		}
		stored.ApplyStats(stats)
		stored.UpdatedAt = r.s.now()
		d.businesses[id] = stored

		return nil
	})
}

func (r *businessRepository) Deactivate(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.businesses[id]
		if !ok || !stored.Active {
			return repository.ErrBusinessNotFound
		}
		stored.Active = false
		stored.UpdatedAt = r.s.now()
		d.businesses[id] = stored

		return nil
	})
}
