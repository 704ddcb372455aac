package collections

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without a database.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Collection
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*Collection)}
}

func (r *MemoryRepository) Create(ctx context.Context, collection *Collection) (*Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	collection.ID = r.nextID
	collection.CreatedAt = time.Now()

	stored := *collection
	r.items[collection.ID] = &stored

	return collection, nil
}

func (r *MemoryRepository) ListByEncyclopedia(ctx context.Context, encyclopediaID int64) ([]*Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Collection
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.items[id]; ok && c.EncyclopediaID == encyclopediaID {
			item := *c
			result = append(result, &item)
		}
	}

	return result, nil
}

func (r *MemoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}
