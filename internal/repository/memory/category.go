package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/category"
)

// CategoryRepo implements category.Repository in memory.
type CategoryRepo struct {
	mu    sync.Mutex
	items map[string]domain.CategoryProps
}

// NewCategoryRepo creates an empty in-memory category repository.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{items: make(map[string]domain.CategoryProps)}
}

func (r *CategoryRepo) Create(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID()] = c.Snapshot()
	return nil
}

func (r *CategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	props, ok := r.items[id]
	if !ok {
		return nil, category.ErrNotFound
	}
	return domain.RehydrateCategory(props), nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Category, 0, len(r.items))
	for _, props := range r.items {
		out = append(out, domain.RehydrateCategory(props))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Snapshot().Title < out[j].Snapshot().Title
	})
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID()]; !ok {
		return category.ErrNotFound
	}
	r.items[c.ID()] = c.Snapshot()
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return category.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
