package product

import "errors"

// Sentinel errors for the product service layer.
var (
	ErrNotFound = errors.New("product not found")
)
