package users

import (
	"context"
	"sync"
	"time"

	"github.com/KarloJair/charlore-api/internal/common"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without a database. It enforces the same username uniqueness the Postgres
// schema does.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrConflict
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()

	stored := *user
	r.byName[user.Username] = &stored

	return user, nil
}

func (r *MemoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byName {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}

	user := *stored
	return &user, nil
}
