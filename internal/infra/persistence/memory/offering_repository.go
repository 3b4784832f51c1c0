package memory

import (
	"context"
	"sort"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"

	"github.com/google/uuid"
)

type offeringRepository struct {
	s session
}

func (r *offeringRepository) Create(_ context.Context, offering *entity.Offering) error {
	return r.s.write(func(d *dataset) error {
		if _, ok := d.businesses[offering.BusinessID]; !ok {
			return repository.ErrBusinessNotFound
		}
		if offering.ID == uuid.Nil {
			offering.ID = uuid.New()
		}
		now := r.s.now()
		offering.CreatedAt = now
		offering.UpdatedAt = now
		d.offerings[offering.ID] = *offering

		return nil
	})
}

func (r *offeringRepository) Update(_ context.Context, offering *entity.Offering) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.offerings[offering.ID]
		if !ok || !stored.Active {
			return repository.ErrOfferingNotFound
		}
		stored.Name = offering.Name
		stored.Description = offering.Description
		stored.Kind = offering.Kind
		stored.ImageURL = offering.ImageURL
		stored.UpdatedAt = r.s.now()
		d.offerings[offering.ID] = stored
		offering.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (r *offeringRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Offering, error) {
	var found *entity.Offering
	r.s.read(func(d *dataset) {
		if offering, ok := d.offerings[id]; ok && offering.Active {
			found = &offering
		}
	})
	if found == nil {
		return nil, repository.ErrOfferingNotFound
	}

	return found, nil
}

func (r *offeringRepository) ListByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Offering, error) {
	return r.list(func(d *dataset, o entity.Offering) bool {
		return o.Active && o.BusinessID == businessID
	}), nil
}

func (r *offeringRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Offering, error) {
	return r.list(func(d *dataset, o entity.Offering) bool {
		business, ok := d.businesses[o.BusinessID]

		return ok && o.Active && business.Active && business.OwnerUserID == ownerID
	}), nil
}

func (r *offeringRepository) list(keep func(d *dataset, o entity.Offering) bool) []*entity.Offering {
	offerings := []*entity.Offering{}
	r.s.read(func(d *dataset) {
		for _, offering := range d.offerings {
			if keep(d, offering) {
				offerings = append(offerings, &offering)
			}
		}
	})
	sort.SliceStable(offerings, func(i, j int) bool {
		if !offerings[i].CreatedAt.Equal(offerings[j].CreatedAt) {
			return offerings[i].CreatedAt.After(offerings[j].CreatedAt)
		}

		return offerings[i].ID.String() < offerings[j].ID.String()
	})

	return offerings
}

func (r *offeringRepository) Deactivate(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(d *dataset) error {
		stored, ok := d.offerings[id]
		if !ok || !stored.Active {
			return repository.ErrOfferingNotFound
		}
		stored.Active = false
		stored.UpdatedAt = r.s.now()
		d.offerings[id] = stored

		return nil
	})
}

func (r *offeringRepository) DeactivateByBusiness(_ context.Context, businessID uuid.UUID) (int64, error) {
	var changed int64
	err := r.s.write(func(d *dataset) error {
		now := r.s.now()
		for id, offering := range d.offerings {
			if offering.BusinessID != businessID || !offering.Active {
				continue
			}
			offering.Active = false
			offering.UpdatedAt = now
			d.offerings[id] = offering
			changed++
		}

		return nil
	})

	return changed, err
}
