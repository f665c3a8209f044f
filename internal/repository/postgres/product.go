package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/product"
)

// ProductRepo implements product.Repository against PostgreSQL.
// With lockOnRead set (transaction-scoped instances only), FindByID takes a
// row lock so concurrent payments cannot race past the stock check.
type ProductRepo struct {
	db         dbtx
	lockOnRead bool
}

// NewProductRepo creates a Postgres-backed product repository.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	s := p.Snapshot()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, title, description, price_cents, promo_price_cents, category_id, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.Title, s.Description, s.PriceCents, s.PromoPriceCents, s.CategoryID, s.Stock)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `
		SELECT id, title, description, price_cents, promo_price_cents, category_id, stock
		FROM products
		WHERE id = $1`
	if r.lockOnRead {
		q += `
		FOR UPDATE`
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, product.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, price_cents, promo_price_cents, category_id, stock
		FROM products
		ORDER BY title ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	s := p.Snapshot()
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title = $2, description = $3, price_cents = $4, promo_price_cents = $5,
		    category_id = $6, stock = $7
		WHERE id = $1
	`, s.ID, s.Title, s.Description, s.PriceCents, s.PromoPriceCents, s.CategoryID, s.Stock)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return product.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return product.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*domain.Product, error) {
	var p domain.ProductProps
	var promo sql.NullInt64
	var categoryID sql.NullString

	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.PriceCents, &promo, &categoryID, &p.Stock); err != nil {
		return nil, err
	}
	if promo.Valid {
		v := int(promo.Int64)
		p.PromoPriceCents = &v
	}
	if categoryID.Valid {
		v := categoryID.String
		p.CategoryID = &v
	}
	return domain.RehydrateProduct(p), nil
}
