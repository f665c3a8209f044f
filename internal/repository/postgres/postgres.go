// Package postgres implements the repository ports against PostgreSQL
// using database/sql and the lib/pq driver.
//
// Each repository works over either a *sql.DB or a *sql.Tx through the dbtx
// interface, so the order payment unit of work can rebind the same code to a
// single transaction.
package postgres

import (
	"context"
	"database/sql"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories use.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
