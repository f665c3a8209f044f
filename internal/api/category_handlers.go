package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/pkg/httputil"
	"github.com/maisonlabs/boutique/internal/service/category"
)

type createCategoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type updateCategoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// HandleListCategories returns all categories.
//
//	GET /categories
func (h *Handlers) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]domain.CategoryProps, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Snapshot())
	}
	httputil.OK(w, out)
}

// HandleGetCategory returns a single category.
//
//	GET /categories/{id}
func (h *Handlers) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.categories.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, c.Snapshot())
}

// HandleCreateCategory creates a category.
//
//	POST /categories
func (h *Handlers) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.Title == nil || req.Description == nil {
		httputil.BadRequest(w, "title and description are required")
		return
	}

	input := category.CreateInput{Title: *req.Title, Description: *req.Description}
	if req.Color != nil {
		input.Color = *req.Color
	}

	c, err := h.categories.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.Created(w, c.Snapshot())
}

// HandleUpdateCategory applies a partial update to a category.
//
//	PUT /categories/{id}
func (h *Handlers) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	c, err := h.categories.Update(r.Context(), id, domain.CategoryPatch{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.OK(w, c.Snapshot())
}

// HandleDeleteCategory removes a category. Products keep existing with a
// nullified category reference.
//
//	DELETE /categories/{id}
func (h *Handlers) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httputil.NoContent(w)
}

// pathID extracts and validates the {id} URL parameter.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		httputil.BadRequest(w, "invalid id: must be a UUID")
		return "", false
	}
	return id, true
}
