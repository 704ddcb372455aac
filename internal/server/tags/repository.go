package tags

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, tag *Tag) (*Tag, error)
}
