package db

import (
	"context"
	"database/sql"

	"github.com/KarloJair/charlore-api/internal/server/collections"
	"github.com/KarloJair/charlore-api/internal/server/elements"
	"github.com/KarloJair/charlore-api/internal/server/encyclopedias"
	"github.com/KarloJair/charlore-api/internal/server/tags"
	"github.com/KarloJair/charlore-api/internal/server/users"
)

// InMemoryRepositoryManager backs every repository with its in-memory
// implementation. Used by tests and local runs without Postgres.
type InMemoryRepositoryManager struct {
	users         users.Repository
	encyclopedias encyclopedias.Repository
	collections   collections.Repository
	elements      elements.Repository
	tags          tags.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Encyclopedias() encyclopedias.Repository {
	return m.encyclopedias
}

func (m InMemoryRepositoryManager) Collections() collections.Repository {
	return m.collections
}

func (m InMemoryRepositoryManager) Elements() elements.Repository {
	return m.elements
}

func (m InMemoryRepositoryManager) Tags() tags.Repository {
	return m.tags
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		encyclopedias: encyclopedias.NewMemoryRepository(),
		collections:   collections.NewMemoryRepository(),
		elements:      elements.NewMemoryRepository(),
		tags:          tags.NewMemoryRepository(),
	}
}
