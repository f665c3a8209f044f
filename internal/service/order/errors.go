package order

import "errors"

// Sentinel errors for the order service layer.
var (
	ErrNotFound = errors.New("order not found")
)
