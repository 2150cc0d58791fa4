package repository

import (
	"context"
	"sync"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

// LocationRegistry holds the named storage locations items point to
type LocationRegistry interface {
	Add(ctx context.Context, name string) (*domain.Location, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Location, error)
	Get(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) []domain.Location
	// Remove deletes the entry without looking at items; reference checks
	// belong to InventoryStore.DeleteLocation.
	Remove(ctx context.Context, id int64) error
	// Fallback returns the location used for reassigned items, creating it on first use
	Fallback(ctx context.Context) *domain.Location
}

// InMemoryLocationRegistry keeps locations in insertion order
type InMemoryLocationRegistry struct {
	mu         sync.RWMutex
	nextID     int64
	order      []int64
	locations  map[int64]*domain.Location
	fallbackID int64
}

func NewLocationRegistry() *InMemoryLocationRegistry {
	return &InMemoryLocationRegistry{
		locations: make(map[int64]*domain.Location),
	}
}

func (r *InMemoryLocationRegistry) Add(ctx context.Context, name string) (*domain.Location, error) {
	location, err := domain.NewLocation(name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(location)
	copied := *location
	return &copied, nil
}

func (r *InMemoryLocationRegistry) insert(location *domain.Location) {
	r.nextID++
	location.ID = r.nextID
	r.locations[location.ID] = location
	r.order = append(r.order, location.ID)
}

func (r *InMemoryLocationRegistry) Rename(ctx context.Context, id int64, name string) (*domain.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, exists := r.locations[id]
	if !exists {
		return nil, domain.ErrLocationNotFound
	}
	if err := location.Rename(name); err != nil {
		return nil, err
	}
	copied := *location
	return &copied, nil
}

func (r *InMemoryLocationRegistry) Get(ctx context.Context, id int64) (*domain.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	location, exists := r.locations[id]
	if !exists {
		return nil, domain.ErrLocationNotFound
	}
	copied := *location
	return &copied, nil
}

func (r *InMemoryLocationRegistry) List(ctx context.Context) []domain.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Location, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, *r.locations[id])
	}
	return list
}

func (r *InMemoryLocationRegistry) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.locations[id]; !exists {
		return domain.ErrLocationNotFound
	}
	delete(r.locations, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.fallbackID == id {
		r.fallbackID = 0
	}
	return nil
}

func (r *InMemoryLocationRegistry) Fallback(ctx context.Context) *domain.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	if location, exists := r.locations[r.fallbackID]; exists {
		copied := *location
		return &copied
	}

	location := &domain.Location{Name: domain.FallbackLocationName}
	r.insert(location)
	r.fallbackID = location.ID
	copied := *location
	return &copied
}
