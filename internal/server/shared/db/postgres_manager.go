package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KarloJair/charlore-api/internal/server/collections"
	"github.com/KarloJair/charlore-api/internal/server/elements"
	"github.com/KarloJair/charlore-api/internal/server/encyclopedias"
	"github.com/KarloJair/charlore-api/internal/server/migrations"
	"github.com/KarloJair/charlore-api/internal/server/tags"
	"github.com/KarloJair/charlore-api/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db            *sql.DB
	users         users.Repository
	encyclopedias encyclopedias.Repository
	collections   collections.Repository
	elements      elements.Repository
	tags          tags.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Encyclopedias() encyclopedias.Repository {
	return m.encyclopedias
}

func (m *PostgresRepositoryManager) Collections() collections.Repository {
	return m.collections
}

func (m *PostgresRepositoryManager) Elements() elements.Repository {
	return m.elements
}

func (m *PostgresRepositoryManager) Tags() tags.Repository {
	return m.tags
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	users, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	encyclopedias, err := encyclopedias.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("encyclopedia repo creation error: %w", err)
	}

	collections, err := collections.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("collection repo creation error: %w", err)
	}

	elements, err := elements.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("element repo creation error: %w", err)
	}

	tags, err := tags.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("tag repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		users:         users,
		encyclopedias: encyclopedias,
		collections:   collections,
		elements:      elements,
		tags:          tags,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
