package store

import (
	"context"
	"sync"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/pkg/platform/sentinel"
)

// InMemory is a map-backed store used by tests and local development. It
// enforces the same name uniqueness as the Postgres store.
type InMemory struct {
	mu     sync.RWMutex
	byID   map[int64]models.Bootcamp
	nextID int64
}

// NewInMemory constructs an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[int64]models.Bootcamp), nextID: 1}
}

func (s *InMemory) Save(ctx context.Context, b models.Bootcamp) (*models.Bootcamp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byID {
		if existing.Name == b.Name {
			return nil, sentinel.ErrConflict
		}
	}

	b.ID = s.nextID
	s.nextID++
	s.byID[b.ID] = b
	saved := b
	return &saved, nil
}

func (s *InMemory) ExistsByName(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.byID {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemory) ExistsByID(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok, nil
}

func (s *InMemory) FindByID(ctx context.Context, id int64) (*models.Bootcamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	found := b
	return &found, nil
}

func (s *InMemory) FindAll(ctx context.Context) ([]models.Bootcamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Bootcamp, 0, len(s.byID))
	for id := int64(1); id < s.nextID; id++ {
		if b, ok := s.byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *InMemory) FindAllByIDs(ctx context.Context, ids []int64) ([]models.Bootcamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Bootcamp, 0, len(ids))
	for _, id := range ids {
		if b, ok := s.byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *InMemory) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, id)
	return nil
}
