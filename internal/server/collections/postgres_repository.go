package collections

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, collection *Collection) (*Collection, error) {

	configuration, err := marshalJSONB(collection.Configuration)
	if err != nil {
		return nil, fmt.Errorf("error encoding configuration: %w", err)
	}

	query :=
		`INSERT INTO collection (encyclopedia_id, name, description, configuration)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		collection.EncyclopediaID, collection.Name, collection.Description, configuration).
		Scan(&collection.ID, &collection.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return collection, nil
}

func (r *PostgresRepository) ListByEncyclopedia(ctx context.Context, encyclopediaID int64) ([]*Collection, error) {

	query :=
		`SELECT id, encyclopedia_id, name, description, configuration, created_at FROM collection
		 WHERE encyclopedia_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, encyclopediaID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Collection
	for rows.Next() {
		c := &Collection{}
		var configuration []byte
		if err := rows.Scan(&c.ID, &c.EncyclopediaID, &c.Name, &c.Description, &configuration, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if err := unmarshalJSONB(configuration, &c.Configuration); err != nil {
			return nil, fmt.Errorf("error decoding configuration: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {

	query := `SELECT EXISTS(SELECT 1 FROM collection WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	return exists, nil
}

// marshalJSONB encodes a map for a jsonb column; nil maps become SQL NULL.
func marshalJSONB(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalJSONB(raw []byte, target *map[string]any) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(raw, target)
}
