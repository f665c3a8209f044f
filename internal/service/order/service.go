package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/pkg/logger"
	"github.com/maisonlabs/boutique/internal/service/product"
)

// Service implements the order use cases. It coordinates the order
// repository, the product repository, and the unit of work used by the
// payment flow.
type Service struct {
	repo     Repository
	products product.Repository
	uow      UnitOfWork
}

// NewService creates an order service.
func NewService(repo Repository, products product.Repository, uow UnitOfWork) *Service {
	return &Service{repo: repo, products: products, uow: uow}
}

// Create persists a new empty cart.
func (s *Service) Create(ctx context.Context) (*domain.Order, error) {
	o := domain.NewOrder(uuid.New().String())
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get returns a single order.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// AddProduct adds one unit of the product to the order's cart. The product's
// current price and stock are snapshotted at add-time; stock is checked, not
// reserved. A missing order is ErrNotFound, a missing product is a
// validation failure.
func (s *Service) AddProduct(ctx context.Context, orderID, productID string) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	p, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, product.ErrNotFound) {
		return nil, domain.NewValidationError("product %s not found", productID)
	}
	if err != nil {
		return nil, err
	}

	snap := p.Snapshot()
	if err := o.AddProduct(productID, snap.PriceCents, snap.Stock); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Pay re-validates stock for every line, decrements each product, and flips
// the order to paid inside one unit of work. A failure on any line rolls
// back every stock decrement and leaves the order untouched.
func (s *Service) Pay(ctx context.Context, orderID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, repos TxRepos) error {
		o, err := repos.Orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		for _, line := range o.Snapshot().Lines {
			p, err := repos.Products.FindByID(ctx, line.ProductID)
			if errors.Is(err, product.ErrNotFound) {
				return domain.NewValidationError("product %s no longer exists", line.ProductID)
			}
			if err != nil {
				return err
			}
			snap := p.Snapshot()
			if snap.Stock < line.Quantity {
				return domain.NewValidationError(
					"insufficient stock for product %q: requested %d, available %d",
					snap.Title, line.Quantity, snap.Stock)
			}
			if err := p.DecrementStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products.Update(ctx, p); err != nil {
				return err
			}
		}

		if err := o.Pay(); err != nil {
			return err
		}
		if err := repos.Orders.Save(ctx, o); err != nil {
			return err
		}

		logger.Info("order paid", "order_id", orderID, "total_cents", o.Snapshot().TotalPriceCents)
		return nil
	})
}

// Cancel moves a cart to canceled. Stock was never reserved, so there is
// nothing to release.
func (s *Service) Cancel(ctx context.Context, orderID string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := o.Cancel(); err != nil {
		return err
	}
	return s.repo.Save(ctx, o)
}

// Ship moves a paid order to shipped. Shipping does not touch stock.
func (s *Service) Ship(ctx context.Context, orderID string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := o.Ship(); err != nil {
		return err
	}
	return s.repo.Save(ctx, o)
}
