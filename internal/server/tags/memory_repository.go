package tags

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without a database.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*Tag
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*Tag)}
}

func (r *MemoryRepository) Create(ctx context.Context, tag *Tag) (*Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	tag.ID = r.nextID
	tag.CreatedAt = time.Now()

	stored := *tag
	r.items[tag.ID] = &stored

	return tag, nil
}
