package encyclopedias

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, encyclopedia *Encyclopedia) (*Encyclopedia, error) {

	query :=
		`INSERT INTO encyclopedias (name, description, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		encyclopedia.Name, encyclopedia.Description, encyclopedia.CreatedBy).
		Scan(&encyclopedia.ID, &encyclopedia.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return encyclopedia, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*Encyclopedia, error) {

	query :=
		`SELECT id, name, description, created_by, created_at FROM encyclopedias
		 WHERE created_by = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Encyclopedia
	for rows.Next() {
		e := &Encyclopedia{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {

	query := `SELECT EXISTS(SELECT 1 FROM encyclopedias WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	return exists, nil
}
