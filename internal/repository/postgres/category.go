package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/category"
)

// CategoryRepo implements category.Repository against PostgreSQL.
type CategoryRepo struct{ db dbtx }

// NewCategoryRepo creates a Postgres-backed category repository.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	p := c.Snapshot()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, title, description, color)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Title, p.Description, p.Color)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var p domain.CategoryProps
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, color
		FROM categories
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Color)
	if err == sql.ErrNoRows {
		return nil, category.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return domain.RehydrateCategory(p), nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, color
		FROM categories
		ORDER BY title ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		var p domain.CategoryProps
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, domain.RehydrateCategory(p))
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	p := c.Snapshot()
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET title = $2, description = $3, color = $4
		WHERE id = $1
	`, p.ID, p.Title, p.Description, p.Color)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return category.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return category.ErrNotFound
	}
	return nil
}
