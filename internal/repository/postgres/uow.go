package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maisonlabs/boutique/internal/service/order"
)

// TxManager implements order.UnitOfWork on top of database/sql transactions.
// Product reads inside the transaction take row locks, which serializes
// concurrent payments touching the same products.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a transaction manager over the given database.
func NewTxManager(db *sql.DB) *TxManager { return &TxManager{db: db} }

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos order.TxRepos) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	repos := order.TxRepos{
		Orders:   &txOrderRepo{tx: tx},
		Products: &ProductRepo{db: tx, lockOnRead: true},
	}
	if err := fn(ctx, repos); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
