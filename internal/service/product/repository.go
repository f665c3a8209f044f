package product

import (
	"context"

	"github.com/maisonlabs/boutique/internal/domain"
)

// Repository defines the data access contract for products.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new product.
	Create(ctx context.Context, p *domain.Product) error

	// FindByID returns a single product. Returns ErrNotFound if it doesn't exist.
	FindByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns all products ordered by title.
	List(ctx context.Context) ([]*domain.Product, error)

	// Update persists the full state of an already-loaded product.
	// Returns ErrNotFound if the row disappeared.
	Update(ctx context.Context, p *domain.Product) error

	// Delete removes a product. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error
}

// Cache is an optional read-through cache for single product reads.
// Any error from Get is treated as a miss; write failures are ignored by the
// service because the repository remains the source of truth.
type Cache interface {
	Get(ctx context.Context, id string) (*domain.ProductProps, error)
	Set(ctx context.Context, props domain.ProductProps) error
	Delete(ctx context.Context, id string) error
}
