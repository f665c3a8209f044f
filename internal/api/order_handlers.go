package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/pkg/httputil"
)

type addOrderItemRequest struct {
	ProductID *string `json:"productId"`
}

// HandleListOrders returns all orders, newest first.
//
//	GET /orders
func (h *Handlers) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]domain.OrderSnapshot, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Snapshot())
	}
	httputil.OK(w, out)
}

// HandleGetOrder returns a single order.
//
//	GET /orders/{id}
func (h *Handlers) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, o.Snapshot())
}

// HandleCreateOrder opens a new empty cart.
//
//	POST /orders
func (h *Handlers) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Create(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, o.Snapshot())
}

// HandleAddOrderItem adds one unit of a product to the cart.
//
//	POST /orders/{id}/items
func (h *Handlers) HandleAddOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req addOrderItemRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.ProductID == nil {
		httputil.BadRequest(w, "productId is required")
		return
	}
	if _, err := uuid.Parse(*req.ProductID); err != nil {
		httputil.BadRequest(w, "invalid productId: must be a UUID")
		return
	}

	o, err := h.orders.AddProduct(r.Context(), id, *req.ProductID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, o.Snapshot())
}

// HandlePayOrder pays the order, decrementing stock for every line.
//
//	POST /orders/{id}/pay
func (h *Handlers) HandlePayOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Pay)
}

// HandleCancelOrder cancels a cart.
//
//	POST /orders/{id}/cancel
func (h *Handlers) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Cancel)
}

// HandleShipOrder ships a paid order.
//
//	POST /orders/{id}/ship
func (h *Handlers) HandleShipOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orders.Ship)
}

// transition runs a status change and responds with the updated order.
func (h *Handlers) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := fn(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, o.Snapshot())
}
