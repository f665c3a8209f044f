package memory

import (
	"context"
	"sync"

	"github.com/maisonlabs/boutique/internal/service/order"
)

// TxManager implements order.UnitOfWork over the in-memory repositories.
// It serializes units of work and restores a pre-transaction snapshot of
// both stores when the function fails, so a mid-loop stock failure never
// leaves partial writes behind.
type TxManager struct {
	mu       sync.Mutex
	orders   *OrderRepo
	products *ProductRepo
}

// NewTxManager creates a unit of work over the given repositories.
func NewTxManager(orders *OrderRepo, products *ProductRepo) *TxManager {
	return &TxManager{orders: orders, products: products}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos order.TxRepos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	orderBackup := m.orders.snapshotAll()
	productBackup := m.products.snapshotAll()

	err := fn(ctx, order.TxRepos{Orders: m.orders, Products: m.products})
	if err != nil {
		m.orders.restore(orderBackup)
		m.products.restore(productBackup)
		return err
	}
	return nil
}
