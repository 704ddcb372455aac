package tags

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new tag.
func (s *Service) Create(ctx context.Context, name, description string) (*Tag, error) {

	tag := &Tag{
		Name:        name,
		Description: description,
	}

	tag, err := s.repo.Create(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("error creating tag: %w", err)
	}

	return tag, nil
}
