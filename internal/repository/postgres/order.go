package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/order"
)

// OrderRepo implements order.Repository against PostgreSQL.
// Save writes the order row and its lines in one transaction so a partially
// written aggregate is never visible.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo creates a Postgres-backed order repository.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save order: %w", err)
	}
	if err := saveOrder(ctx, tx, o); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save order: %w", err)
	}
	return nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return findOrder(ctx, r.db, id)
}

func (r *OrderRepo) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return findAllOrders(ctx, r.db)
}

// txOrderRepo is an order.Repository bound to an open transaction. Used by
// TxManager so payment persistence shares the caller's transaction.
type txOrderRepo struct {
	tx *sql.Tx
}

func (r *txOrderRepo) Save(ctx context.Context, o *domain.Order) error {
	return saveOrder(ctx, r.tx, o)
}

func (r *txOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return findOrder(ctx, r.tx, id)
}

func (r *txOrderRepo) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return findAllOrders(ctx, r.tx)
}

func saveOrder(ctx context.Context, tx dbtx, o *domain.Order) error {
	s := o.Snapshot()

	_, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, status, created_at, payed_at, canceled_at, total_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    payed_at = EXCLUDED.payed_at,
		    canceled_at = EXCLUDED.canceled_at,
		    total_price_cents = EXCLUDED.total_price_cents
	`, s.ID, string(s.Status), s.CreatedAt, s.PayedAt, s.CanceledAt, s.TotalPriceCents)
	if err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_lines WHERE order_id = $1`, s.ID); err != nil {
		return fmt.Errorf("clear order lines: %w", err)
	}
	for _, line := range s.Lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, product_id, unit_price_cents, quantity)
			VALUES ($1, $2, $3, $4)
		`, s.ID, line.ProductID, line.UnitPriceCents, line.Quantity)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

func findOrder(ctx context.Context, db dbtx, id string) (*domain.Order, error) {
	var props domain.OrderProps
	var status string
	var payedAt, canceledAt sql.NullTime

	err := db.QueryRowContext(ctx, `
		SELECT id, status, created_at, payed_at, canceled_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&props.ID, &status, &props.CreatedAt, &payedAt, &canceledAt)
	if err == sql.ErrNoRows {
		return nil, order.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	props.Status = domain.OrderStatus(status)
	if payedAt.Valid {
		t := payedAt.Time
		props.PayedAt = &t
	}
	if canceledAt.Valid {
		t := canceledAt.Time
		props.CanceledAt = &t
	}

	lines, err := findLines(ctx, db, []string{id})
	if err != nil {
		return nil, err
	}
	props.Lines = lines[id]

	return domain.RehydrateOrder(props), nil
}

func findAllOrders(ctx context.Context, db dbtx) ([]*domain.Order, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, status, created_at, payed_at, canceled_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var all []domain.OrderProps
	var ids []string
	for rows.Next() {
		var props domain.OrderProps
		var status string
		var payedAt, canceledAt sql.NullTime
		if err := rows.Scan(&props.ID, &status, &props.CreatedAt, &payedAt, &canceledAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		props.Status = domain.OrderStatus(status)
		if payedAt.Valid {
			t := payedAt.Time
			props.PayedAt = &t
		}
		if canceledAt.Valid {
			t := canceledAt.Time
			props.CanceledAt = &t
		}
		all = append(all, props)
		ids = append(ids, props.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	lines, err := findLines(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Order, 0, len(all))
	for _, props := range all {
		props.Lines = lines[props.ID]
		out = append(out, domain.RehydrateOrder(props))
	}
	return out, nil
}

func findLines(ctx context.Context, db dbtx, orderIDs []string) (map[string][]domain.OrderLine, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT order_id, product_id, unit_price_cents, quantity
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY order_id, product_id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderLine)
	for rows.Next() {
		var orderID string
		var line domain.OrderLine
		if err := rows.Scan(&orderID, &line.ProductID, &line.UnitPriceCents, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		out[orderID] = append(out[orderID], line)
	}
	return out, rows.Err()
}
