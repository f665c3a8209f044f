// Package api exposes the HTTP surface of the shop: category and product
// catalog CRUD plus the order lifecycle endpoints.
package api

import (
	"github.com/maisonlabs/boutique/internal/service/category"
	"github.com/maisonlabs/boutique/internal/service/order"
	"github.com/maisonlabs/boutique/internal/service/product"
)

// Handlers bundles the services the HTTP layer delegates to.
type Handlers struct {
	categories *category.Service
	products   *product.Service
	orders     *order.Service
}

// NewHandlers creates the handler set for the API routes.
func NewHandlers(categories *category.Service, products *product.Service, orders *order.Service) *Handlers {
	return &Handlers{
		categories: categories,
		products:   products,
		orders:     orders,
	}
}
