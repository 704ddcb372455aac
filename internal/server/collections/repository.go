package collections

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, collection *Collection) (*Collection, error)
	ListByEncyclopedia(ctx context.Context, encyclopediaID int64) ([]*Collection, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
