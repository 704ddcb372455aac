// Package db wires the repository implementations behind a single manager
// so the rest of the server can be constructed from one DSN (or from the
// in-memory variant in tests).
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

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Encyclopedias() encyclopedias.Repository
	Collections() collections.Repository
	Elements() elements.Repository
	Tags() tags.Repository
}
