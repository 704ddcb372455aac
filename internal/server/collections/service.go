package collections

import (
	"context"
	"fmt"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/KarloJair/charlore-api/internal/server/encyclopedias"
)

type Service struct {
	repo          Repository
	encyclopedias encyclopedias.Repository
}

func NewService(repo Repository, encyclopedias encyclopedias.Repository) *Service {
	return &Service{
		repo:          repo,
		encyclopedias: encyclopedias,
	}
}

// Create persists a new collection. An unknown encyclopedia surfaces as
// common.ErrNotFound.
func (s *Service) Create(ctx context.Context, encyclopediaID int64, name, description string, configuration map[string]any) (*Collection, error) {

	exists, err := s.encyclopedias.Exists(ctx, encyclopediaID)
	if err != nil {
		return nil, fmt.Errorf("error checking encyclopedia: %w", err)
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	collection := &Collection{
		EncyclopediaID: encyclopediaID,
		Name:           name,
		Description:    description,
		Configuration:  configuration,
	}

	collection, err = s.repo.Create(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("error creating collection: %w", err)
	}

	return collection, nil
}

// ListByEncyclopedia returns the collections of the given encyclopedia.
func (s *Service) ListByEncyclopedia(ctx context.Context, encyclopediaID int64) ([]*Collection, error) {

	result, err := s.repo.ListByEncyclopedia(ctx, encyclopediaID)
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}

	return result, nil
}
