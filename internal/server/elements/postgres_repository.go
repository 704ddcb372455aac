package elements

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KarloJair/charlore-api/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, element *Element) (*Element, error) {

	data, err := marshalJSONB(element.Data)
	if err != nil {
		return nil, fmt.Errorf("error encoding data: %w", err)
	}

	query :=
		`INSERT INTO element (name, description, data, collection_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		element.Name, element.Description, data, element.CollectionID).
		Scan(&element.ID, &element.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return element, nil
}

func (r *PostgresRepository) ListByCollection(ctx context.Context, collectionID int64) ([]*Element, error) {

	query :=
		`SELECT id, name, description, data, collection_id, created_at FROM element
		 WHERE collection_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Element
	for rows.Next() {
		e := &Element{}
		var data []byte
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &data, &e.CollectionID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if err := unmarshalJSONB(data, &e.Data); err != nil {
			return nil, fmt.Errorf("error decoding data: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Element, error) {

	query :=
		`SELECT id, name, description, data, collection_id, created_at FROM element
		 WHERE id = $1
		 `

	e := &Element{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Name, &e.Description, &data, &e.CollectionID, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if err := unmarshalJSONB(data, &e.Data); err != nil {
		return nil, fmt.Errorf("error decoding data: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, element *Element) (*Element, error) {

	data, err := marshalJSONB(element.Data)
	if err != nil {
		return nil, fmt.Errorf("error encoding data: %w", err)
	}

	query :=
		`UPDATE element
		 SET name = $2, description = $3, data = $4, collection_id = $5
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query,
		element.ID, element.Name, element.Description, data, element.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	return element, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {

	result, err := r.db.ExecContext(ctx, `DELETE FROM element WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
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
