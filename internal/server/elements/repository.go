package elements

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, element *Element) (*Element, error)
	ListByCollection(ctx context.Context, collectionID int64) ([]*Element, error)
	GetByID(ctx context.Context, id int64) (*Element, error)
	Update(ctx context.Context, element *Element) (*Element, error)
	Delete(ctx context.Context, id int64) error
}
