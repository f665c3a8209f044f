package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/product"
)

// ProductRepo implements product.Repository in memory.
type ProductRepo struct {
	mu    sync.Mutex
	items map[string]domain.ProductProps
}

// NewProductRepo creates an empty in-memory product repository.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{items: make(map[string]domain.ProductProps)}
}

func (r *ProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID()] = p.Snapshot()
	return nil
}

func (r *ProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	props, ok := r.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return domain.RehydrateProduct(props), nil
}

func (r *ProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Product, 0, len(r.items))
	for _, props := range r.items {
		out = append(out, domain.RehydrateProduct(props))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Snapshot().Title < out[j].Snapshot().Title
	})
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID()]; !ok {
		return product.ErrNotFound
	}
	r.items[p.ID()] = p.Snapshot()
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// snapshotAll returns a copy of the backing map, for transaction rollback.
func (r *ProductRepo) snapshotAll() map[string]domain.ProductProps {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make(map[string]domain.ProductProps, len(r.items))
	for k, v := range r.items {
		cp[k] = v
	}
	return cp
}

// restore replaces the backing map, for transaction rollback.
func (r *ProductRepo) restore(items map[string]domain.ProductProps) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
}
