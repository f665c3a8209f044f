package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/maisonlabs/boutique/internal/domain"
)

// Service implements product business logic. It coordinates the repository
// and the optional catalog cache. All public methods are safe for concurrent
// use if the underlying repository is concurrency-safe.
type Service struct {
	repo  Repository
	cache Cache
}

// NewService creates a product service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceWithCache creates a product service with a read-through cache in
// front of single product reads.
func NewServiceWithCache(repo Repository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// CreateInput holds the fields for creating a new product.
type CreateInput struct {
	Title           string
	Description     string
	PriceCents      int
	PromoPriceCents *int
	CategoryID      *string
	Stock           int
}

// Create validates and persists a new product.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Product, error) {
	p, err := domain.NewProduct(domain.ProductProps{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Description:     input.Description,
		PriceCents:      input.PriceCents,
		PromoPriceCents: input.PromoPriceCents,
		CategoryID:      input.CategoryID,
		Stock:           input.Stock,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a single product, serving from the cache when possible.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache != nil {
		if props, err := s.cache.Get(ctx, id); err == nil {
			return domain.RehydrateProduct(*props), nil
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, p.Snapshot())
	}
	return p, nil
}

// List returns all products. Lists always hit the repository.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Update merges the patch onto the stored product, revalidates the merged
// result, and persists it. The cached entry is invalidated, not rewritten.
func (s *Service) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
	return p, nil
}

// Delete removes a product and drops it from the cache.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
	return nil
}
