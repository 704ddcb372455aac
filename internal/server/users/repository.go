package users

import (
	"context"
)

// Repository is the user store. Implementations must enforce username
// uniqueness and surface a violation as common.ErrConflict.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
