// Package memory is an in-process implementation of the repository
// interfaces, used by the "memory" storage driver and by tests.
//
// A transaction takes the store's write lock for its whole duration and
// works on a copy of the data that replaces the live copy on commit, so
// transactions are serialized and a failed callback leaves no trace.
package memory

import (
	"context"
	"sync"
	"time"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/domain/repository"

	"github.com/google/uuid"
)

type dataset struct {
	users      map[uuid.UUID]entity.User
	businesses map[uuid.UUID]entity.Business
	offerings  map[uuid.UUID]entity.Offering
	ratings    map[uuid.UUID]entity.Rating
}

func newDataset() *dataset {
	return &dataset{
		users:      make(map[uuid.UUID]entity.User),
		businesses: make(map[uuid.UUID]entity.Business),
		offerings:  make(map[uuid.UUID]entity.Offering),
		ratings:    make(map[uuid.UUID]entity.Rating),
	}
}

func (d *dataset) clone() *dataset {
	cloned := &dataset{
		users:      make(map[uuid.UUID]entity.User, len(d.users)),
		businesses: make(map[uuid.UUID]entity.Business, len(d.businesses)),
		offerings:  make(map[uuid.UUID]entity.Offering, len(d.offerings)),
		ratings:    make(map[uuid.UUID]entity.Rating, len(d.ratings)),
	}
	for k, v := range d.users {
		cloned.users[k] = v
	}
	for k, v := range d.businesses {
		cloned.businesses[k] = v
	}
	for k, v := range d.offerings {
		cloned.offerings[k] = v
	}
	for k, v := range d.ratings {
		cloned.ratings[k] = v
	}

	return cloned
}

// Store owns the data shared by every repository of the memory backend.
type Store struct {
	mu   sync.RWMutex
	data *dataset
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data: newDataset(),
		now:  time.Now,
	}
}

// session is the view a repository works on: the live data guarded by the
// store lock, or a transaction copy already guarded by Execute.
type session struct {
	store *Store
	tx    *dataset
}

func (s session) read(fn func(d *dataset)) {
	if s.tx != nil {
		fn(s.tx)

		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	fn(s.store.data)
}

func (s session) write(fn func(d *dataset) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return fn(s.store.data)
}

func (s session) now() time.Time {
	return s.store.now().UTC()
}

// Repositories bound to the live data, for use outside transactions.

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{session{store: store}}
}

func NewBusinessRepository(store *Store) repository.BusinessRepository {
	return &businessRepository{session{store: store}}
}

func NewOfferingRepository(store *Store) repository.OfferingRepository {
	return &offeringRepository{session{store: store}}
}

func NewRatingRepository(store *Store) repository.RatingRepository {
	return &ratingRepository{session{store: store}}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with exclusive access to a copy of the data and publishes
// the copy only when fn succeeds.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := tm.store.data.clone()
	if err := fn(&repositoryFactory{session{store: tm.store, tx: tx}}); err != nil {
		return err
	}
	tm.store.data = tx

	return nil
}

type repositoryFactory struct {
	s session
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{f.s}
}

func (f *repositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{f.s}
}

func (f *repositoryFactory) NewOfferingRepository() repository.OfferingRepository {
	return &offeringRepository{f.s}
}

func (f *repositoryFactory) NewRatingRepository() repository.RatingRepository {
	return &ratingRepository{f.s}
}
