// Package product implements product catalog management.
//
// The service layer contains the business logic for creating, updating, and
// deleting products, with an optional read-through cache in front of single
// product reads. It depends on the Repository and Cache interfaces defined in
// this package and never imports from api/ or database/sql.
//
// Repository implementations live in repository/postgres/ and
// repository/memory/; the cache implementation lives in internal/cache.
package product
