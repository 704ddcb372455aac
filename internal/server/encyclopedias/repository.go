package encyclopedias

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, encyclopedia *Encyclopedia) (*Encyclopedia, error)
	ListByUser(ctx context.Context, userID int64) ([]*Encyclopedia, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
