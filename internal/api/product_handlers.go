package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/pkg/httputil"
	"github.com/maisonlabs/boutique/internal/service/product"
)

type createProductRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	PriceCents      *int    `json:"priceCents"`
	PromoPriceCents *int    `json:"promoPriceCents"`
	CategoryID      *string `json:"categoryId"`
	Stock           *int    `json:"stock"`
}

// updateProductRequest keeps promoPriceCents and categoryId as raw JSON so
// an explicit null (clear the field) can be told apart from an absent key
// (leave it alone).
type updateProductRequest struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	PriceCents      *int            `json:"priceCents"`
	PromoPriceCents json.RawMessage `json:"promoPriceCents"`
	CategoryID      json.RawMessage `json:"categoryId"`
	Stock           *int            `json:"stock"`
}

// HandleListProducts returns all products.
//
//	GET /products
func (h *Handlers) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	prods, err := h.products.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]domain.ProductProps, 0, len(prods))
	for _, p := range prods {
		out = append(out, p.Snapshot())
	}
	httputil.OK(w, out)
}

// HandleGetProduct returns a single product.
//
//	GET /products/{id}
func (h *Handlers) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, p.Snapshot())
}

// HandleCreateProduct creates a product.
//
//	POST /products
func (h *Handlers) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.Title == nil || req.Description == nil || req.PriceCents == nil || req.Stock == nil {
		httputil.BadRequest(w, "title, description, priceCents and stock are required")
		return
	}
	if req.CategoryID != nil {
		if _, err := uuid.Parse(*req.CategoryID); err != nil {
			httputil.BadRequest(w, "invalid categoryId: must be a UUID")
			return
		}
	}

	p, err := h.products.Create(r.Context(), product.CreateInput{
		Title:           *req.Title,
		Description:     *req.Description,
		PriceCents:      *req.PriceCents,
		PromoPriceCents: req.PromoPriceCents,
		CategoryID:      req.CategoryID,
		Stock:           *req.Stock,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, p.Snapshot())
}

// HandleUpdateProduct applies a partial update to a product. Sending a JSON
// null for promoPriceCents or categoryId clears the field.
//
//	PUT /products/{id}
func (h *Handlers) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateProductRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	patch := domain.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
	}

	switch {
	case req.PromoPriceCents == nil:
	case isJSONNull(req.PromoPriceCents):
		patch.ClearPromoPrice = true
	default:
		var promo int
		if err := json.Unmarshal(req.PromoPriceCents, &promo); err != nil {
			httputil.BadRequest(w, "invalid promoPriceCents: must be an integer or null")
			return
		}
		patch.PromoPriceCents = &promo
	}

	switch {
	case req.CategoryID == nil:
	case isJSONNull(req.CategoryID):
		patch.ClearCategory = true
	default:
		var catID string
		if err := json.Unmarshal(req.CategoryID, &catID); err != nil {
			httputil.BadRequest(w, "invalid categoryId: must be a string or null")
			return
		}
		if _, err := uuid.Parse(catID); err != nil {
			httputil.BadRequest(w, "invalid categoryId: must be a UUID")
			return
		}
		patch.CategoryID = &catID
	}

	p, err := h.products.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, p.Snapshot())
}

// HandleDeleteProduct removes a product.
//
//	DELETE /products/{id}
func (h *Handlers) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.products.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.NoContent(w)
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
