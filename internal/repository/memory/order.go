package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/order"
)

// OrderRepo implements order.Repository in memory.
type OrderRepo struct {
	mu    sync.Mutex
	items map[string]domain.OrderProps
}

// NewOrderRepo creates an empty in-memory order repository.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{items: make(map[string]domain.OrderProps)}
}

func (r *OrderRepo) Save(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[o.ID()] = o.Snapshot().OrderProps
	return nil
}

func (r *OrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	props, ok := r.items[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return domain.RehydrateOrder(copyOrderProps(props)), nil
}

func (r *OrderRepo) FindAll(_ context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Order, 0, len(r.items))
	for _, props := range r.items {
		out = append(out, domain.RehydrateOrder(copyOrderProps(props)))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Snapshot().CreatedAt.After(out[j].Snapshot().CreatedAt)
	})
	return out, nil
}

// snapshotAll returns a copy of the backing map, for transaction rollback.
func (r *OrderRepo) snapshotAll() map[string]domain.OrderProps {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make(map[string]domain.OrderProps, len(r.items))
	for k, v := range r.items {
		cp[k] = copyOrderProps(v)
	}
	return cp
}

// restore replaces the backing map, for transaction rollback.
func (r *OrderRepo) restore(items map[string]domain.OrderProps) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
}

func copyOrderProps(p domain.OrderProps) domain.OrderProps {
	lines := make([]domain.OrderLine, len(p.Lines))
	copy(lines, p.Lines)
	p.Lines = lines
	return p
}
