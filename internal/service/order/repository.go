package order

import (
	"context"

	"github.com/maisonlabs/boutique/internal/domain"
)

// Repository defines the data access contract for orders.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Save persists the order row and replaces its lines as one atomic write.
	// It inserts on first save and updates afterwards.
	Save(ctx context.Context, o *domain.Order) error

	// FindByID returns a single order with its lines.
	// Returns ErrNotFound if it doesn't exist.
	FindByID(ctx context.Context, id string) (*domain.Order, error)

	// FindAll returns all orders with their lines, newest first.
	FindAll(ctx context.Context) ([]*domain.Order, error)
}

// ProductStore is the slice of the product repository the payment flow
// needs: read a product, write it back with decremented stock.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
}

// TxRepos groups the repositories bound to one transaction.
type TxRepos struct {
	Orders   Repository
	Products ProductStore
}

// UnitOfWork runs a function against transaction-scoped repositories.
// If fn returns an error, nothing it wrote is persisted.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}
