package category

import (
	"context"

	"github.com/maisonlabs/boutique/internal/domain"
)

// Repository defines the data access contract for categories.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new category.
	Create(ctx context.Context, c *domain.Category) error

	// FindByID returns a single category. Returns ErrNotFound if it doesn't exist.
	FindByID(ctx context.Context, id string) (*domain.Category, error)

	// List returns all categories ordered by title.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update persists the full state of an already-loaded category.
	// Returns ErrNotFound if the row disappeared.
	Update(ctx context.Context, c *domain.Category) error

	// Delete removes a category. Returns ErrNotFound if it doesn't exist.
	// References from products are nullified by the schema, not checked here.
	Delete(ctx context.Context, id string) error
}
