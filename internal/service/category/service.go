package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/maisonlabs/boutique/internal/domain"
)

// Service implements category business logic on top of a Repository.
// All public methods are safe for concurrent use if the underlying
// repository is concurrency-safe.
type Service struct {
	repo Repository
}

// NewService creates a category service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput holds the fields for creating a new category.
type CreateInput struct {
	Title       string
	Description string
	Color       string
}

// Create validates and persists a new category.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Category, error) {
	c, err := domain.NewCategory(domain.CategoryProps{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Color:       input.Color,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a single category.
func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all categories.
func (s *Service) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

// Update merges the patch onto the stored category, revalidates the merged
// result, and persists it.
func (s *Service) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category. Products referencing it keep existing with a
// nullified category.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
