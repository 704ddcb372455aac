package encyclopedias

import (
	"context"
	"fmt"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/KarloJair/charlore-api/internal/server/users"
)

type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, users users.Repository) *Service {
	return &Service{
		repo:  repo,
		users: users,
	}
}

// Create persists a new encyclopedia. An unknown owner surfaces as
// common.ErrNotFound.
func (s *Service) Create(ctx context.Context, name, description string, createdBy int64) (*Encyclopedia, error) {

	exists, err := s.users.Exists(ctx, createdBy)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	encyclopedia := &Encyclopedia{
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
	}

	encyclopedia, err = s.repo.Create(ctx, encyclopedia)
	if err != nil {
		return nil, fmt.Errorf("error creating encyclopedia: %w", err)
	}

	return encyclopedia, nil
}

// ListByUser returns the encyclopedias owned by the given user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*Encyclopedia, error) {

	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing encyclopedias: %w", err)
	}

	return result, nil
}
