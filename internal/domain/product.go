package domain

import "strings"

// MaxPriceCents is the exclusive upper bound for a product price (30 000 EUR).
const MaxPriceCents = 3_000_000

// ProductProps is the plain-data snapshot of a Product aggregate.
type ProductProps struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	PriceCents      int     `json:"priceCents"`
	PromoPriceCents *int    `json:"promoPriceCents"`
	CategoryID      *string `json:"categoryId"`
	Stock           int     `json:"stock"`
}

// Product is a catalog item with a price, optional promo price, optional
// category, and an on-hand stock count.
type Product struct {
	props ProductProps
}

// NewProduct validates and normalizes the given props into a Product.
func NewProduct(props ProductProps) (*Product, error) {
	if err := validateProduct(props); err != nil {
		return nil, err
	}
	return &Product{props: normalizeProduct(props)}, nil
}

// RehydrateProduct rebuilds a Product from persisted state without
// re-running creation validation. Stock may be zero here: the pay flow can
// legitimately sell a product out even though create/update forbid zero.
func RehydrateProduct(props ProductProps) *Product {
	return &Product{props: normalizeProduct(props)}
}

// ProductPatch holds a partial update; nil fields are left untouched.
// ClearPromoPrice and ClearCategory distinguish "set to null" from "keep".
type ProductPatch struct {
	Title           *string
	Description     *string
	PriceCents      *int
	PromoPriceCents *int
	ClearPromoPrice bool
	CategoryID      *string
	ClearCategory   bool
	Stock           *int
}

// Update merges the patch onto the current state and revalidates the merged
// result. An update can fail on fields it did not touch, because the merged
// object must satisfy all invariants. The aggregate is unchanged on failure.
func (p *Product) Update(patch ProductPatch) error {
	next := p.props
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.PriceCents != nil {
		next.PriceCents = *patch.PriceCents
	}
	if patch.ClearPromoPrice {
		next.PromoPriceCents = nil
	} else if patch.PromoPriceCents != nil {
		next.PromoPriceCents = patch.PromoPriceCents
	}
	if patch.ClearCategory {
		next.CategoryID = nil
	} else if patch.CategoryID != nil {
		next.CategoryID = patch.CategoryID
	}
	if patch.Stock != nil {
		next.Stock = *patch.Stock
	}
	if err := validateProduct(next); err != nil {
		return err
	}
	p.props = normalizeProduct(next)
	return nil
}

// DecrementStock removes n units from stock. It is called by the order
// payment flow, never by catalog updates, and may drive stock to zero.
func (p *Product) DecrementStock(n int) error {
	if n <= 0 {
		return NewValidationError("stock decrement must be positive")
	}
	if p.props.Stock < n {
		return NewValidationError("insufficient stock for product %q: requested %d, available %d",
			p.props.Title, n, p.props.Stock)
	}
	p.props.Stock -= n
	return nil
}

// Snapshot returns the current state as a plain struct.
func (p *Product) Snapshot() ProductProps { return p.props }

// ID returns the product id.
func (p *Product) ID() string { return p.props.ID }

func normalizeProduct(p ProductProps) ProductProps {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	return p
}

func validateProduct(p ProductProps) error {
	title := strings.TrimSpace(p.Title)
	desc := strings.TrimSpace(p.Description)

	if len(title) <= 2 {
		return NewValidationError("title must be longer than 2 characters")
	}
	if len(title) >= 100 {
		return NewValidationError("title must be shorter than 100 characters")
	}
	if len(desc) <= 2 {
		return NewValidationError("description must be longer than 2 characters")
	}
	if len(desc) >= 500 {
		return NewValidationError("description must be shorter than 500 characters")
	}
	if p.PriceCents <= 0 {
		return NewValidationError("price must be greater than 0")
	}
	if p.PriceCents >= MaxPriceCents {
		return NewValidationError("price must be less than %d cents", MaxPriceCents)
	}
	if p.PromoPriceCents != nil && *p.PromoPriceCents >= p.PriceCents {
		return NewValidationError("promo price must be less than the regular price")
	}
	if p.Stock <= 0 {
		return NewValidationError("stock must be greater than 0")
	}
	return nil
}
