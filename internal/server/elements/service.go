package elements

import (
	"context"
	"fmt"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/KarloJair/charlore-api/internal/server/collections"
)

type Service struct {
	repo        Repository
	collections collections.Repository
}

func NewService(repo Repository, collections collections.Repository) *Service {
	return &Service{
		repo:        repo,
		collections: collections,
	}
}

// Create persists a new element. An unknown collection surfaces as
// common.ErrNotFound.
func (s *Service) Create(ctx context.Context, collectionID int64, name, description string, data map[string]any) (*Element, error) {

	exists, err := s.collections.Exists(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("error checking collection: %w", err)
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	element := &Element{
		Name:         name,
		Description:  description,
		Data:         data,
		CollectionID: collectionID,
	}

	element, err = s.repo.Create(ctx, element)
	if err != nil {
		return nil, fmt.Errorf("error creating element: %w", err)
	}

	return element, nil
}

// ListByCollection returns the elements of the given collection.
func (s *Service) ListByCollection(ctx context.Context, collectionID int64) ([]*Element, error) {

	result, err := s.repo.ListByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("error listing elements: %w", err)
	}

	return result, nil
}

// Get returns a single element by id.
func (s *Service) Get(ctx context.Context, id int64) (*Element, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update: only the fields set in patch change.
// Moving the element to an unknown collection surfaces as
// common.ErrNotFound, same as an unknown element id.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Element, error) {

	element, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		element.Name = *patch.Name
	}
	if patch.Description != nil {
		element.Description = *patch.Description
	}
	if patch.Data != nil {
		element.Data = patch.Data
	}
	if patch.CollectionID != nil {
		exists, err := s.collections.Exists(ctx, *patch.CollectionID)
		if err != nil {
			return nil, fmt.Errorf("error checking collection: %w", err)
		}
		if !exists {
			return nil, common.ErrNotFound
		}
		element.CollectionID = *patch.CollectionID
	}

	element, err = s.repo.Update(ctx, element)
	if err != nil {
		return nil, err
	}

	return element, nil
}

// Delete removes an element by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
