package category

import "errors"

// Sentinel errors for the category service layer.
var (
	ErrNotFound = errors.New("category not found")
)
