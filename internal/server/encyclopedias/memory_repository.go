package encyclopedias

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
	items  map[int64]*Encyclopedia
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*Encyclopedia)}
}

func (r *MemoryRepository) Create(ctx context.Context, encyclopedia *Encyclopedia) (*Encyclopedia, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	encyclopedia.ID = r.nextID
	encyclopedia.CreatedAt = time.Now()

	stored := *encyclopedia
	r.items[encyclopedia.ID] = &stored

	return encyclopedia, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID int64) ([]*Encyclopedia, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Encyclopedia
	for id := int64(1); id <= r.nextID; id++ {
		if e, ok := r.items[id]; ok && e.CreatedBy == userID {
			item := *e
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
