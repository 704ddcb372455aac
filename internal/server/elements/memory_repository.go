package elements

import (
	"context"
	"sync"
	"time"

	"github.com/KarloJair/charlore-api/internal/common"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without a database.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Element
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*Element)}
}

func (r *MemoryRepository) Create(ctx context.Context, element *Element) (*Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	element.ID = r.nextID
	element.CreatedAt = time.Now()

	stored := *element
	r.items[element.ID] = &stored

	return element, nil
}

func (r *MemoryRepository) ListByCollection(ctx context.Context, collectionID int64) ([]*Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Element
	for id := int64(1); id <= r.nextID; id++ {
		if e, ok := r.items[id]; ok && e.CollectionID == collectionID {
			item := *e
			result = append(result, &item)
		}
	}

	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	element := *stored
	return &element, nil
}

func (r *MemoryRepository) Update(ctx context.Context, element *Element) (*Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[element.ID]; !ok {
		return nil, common.ErrNotFound
	}

	stored := *element
	r.items[element.ID] = &stored

	return element, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}

	delete(r.items, id)
	return nil
}
