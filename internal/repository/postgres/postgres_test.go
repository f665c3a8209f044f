package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/maisonlabs/boutique/internal/domain"
	"github.com/maisonlabs/boutique/internal/service/category"
	"github.com/maisonlabs/boutique/internal/service/order"
	"github.com/maisonlabs/boutique/internal/service/product"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func TestCategoryRepo_FindByID_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT id, title, description, color\s+FROM categories`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewCategoryRepo(db)
	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, category.ErrNotFound) {
		t.Errorf("FindByID error = %v, want ErrNotFound", err)
	}
}

func TestCategoryRepo_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM categories`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCategoryRepo(db)
	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, category.ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestProductRepo_FindByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "price_cents", "promo_price_cents", "category_id", "stock"}).
		AddRow("p-1", "Kindle", "E-reader with backlight", 9999, 7999, "c-1", 5)
	mock.ExpectQuery(`SELECT id, title, description, price_cents, promo_price_cents, category_id, stock\s+FROM products\s+WHERE id = \$1$`).
		WithArgs("p-1").
		WillReturnRows(rows)

	repo := NewProductRepo(db)
	p, err := repo.FindByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	s := p.Snapshot()
	if s.Title != "Kindle" || s.PriceCents != 9999 || s.Stock != 5 {
		t.Errorf("unexpected product snapshot: %+v", s)
	}
	if s.PromoPriceCents == nil || *s.PromoPriceCents != 7999 {
		t.Errorf("PromoPriceCents = %v, want 7999", s.PromoPriceCents)
	}
	if s.CategoryID == nil || *s.CategoryID != "c-1" {
		t.Errorf("CategoryID = %v, want c-1", s.CategoryID)
	}
}

func TestProductRepo_FindByID_NullFields(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "price_cents", "promo_price_cents", "category_id", "stock"}).
		AddRow("p-2", "Plain Shirt", "Cotton shirt in white", 1999, nil, nil, 3)
	mock.ExpectQuery(`FROM products`).WithArgs("p-2").WillReturnRows(rows)

	repo := NewProductRepo(db)
	p, err := repo.FindByID(context.Background(), "p-2")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	s := p.Snapshot()
	if s.PromoPriceCents != nil {
		t.Errorf("PromoPriceCents = %v, want nil", s.PromoPriceCents)
	}
	if s.CategoryID != nil {
		t.Errorf("CategoryID = %v, want nil", s.CategoryID)
	}
}

func TestProductRepo_FindByID_LocksInsideTx(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	rows := sqlmock.NewRows([]string{"id", "title", "description", "price_cents", "promo_price_cents", "category_id", "stock"}).
		AddRow("p-1", "Kindle", "E-reader with backlight", 9999, nil, nil, 1)
	mock.ExpectQuery(`FROM products\s+WHERE id = \$1\s+FOR UPDATE`).
		WithArgs("p-1").
		WillReturnRows(rows)
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	repo := &ProductRepo{db: tx, lockOnRead: true}
	if _, err := repo.FindByID(context.Background(), "p-1"); err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductRepo_Update_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE products`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	p := domain.RehydrateProduct(domain.ProductProps{
		ID: "missing", Title: "Kindle", Description: "E-reader with backlight",
		PriceCents: 9999, Stock: 1,
	})
	repo := NewProductRepo(db)
	if err := repo.Update(context.Background(), p); !errors.Is(err, product.ErrNotFound) {
		t.Errorf("Update error = %v, want ErrNotFound", err)
	}
}

func TestOrderRepo_Save_TransactionShape(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	o := domain.NewOrder("o-1")
	if err := o.AddProduct("p-1", 9999, 5); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs("o-1", "cart", sqlmock.AnyArg(), nil, nil, 9999).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM order_lines`).
		WithArgs("o-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO order_lines`).
		WithArgs("o-1", "p-1", 9999, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewOrderRepo(db)
	if err := repo.Save(context.Background(), o); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestOrderRepo_Save_RollsBackOnLineError(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	o := domain.NewOrder("o-1")
	if err := o.AddProduct("p-1", 9999, 5); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM order_lines`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO order_lines`).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	repo := NewOrderRepo(db)
	if err := repo.Save(context.Background(), o); err == nil {
		t.Fatal("Save should propagate line insert error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestOrderRepo_FindByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	payed := created.Add(time.Hour)

	mock.ExpectQuery(`FROM orders\s+WHERE id = \$1`).
		WithArgs("o-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at", "payed_at", "canceled_at"}).
			AddRow("o-1", "paid", created, payed, nil))
	mock.ExpectQuery(`FROM order_lines`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "unit_price_cents", "quantity"}).
			AddRow("o-1", "p-1", 9999, 2))

	repo := NewOrderRepo(db)
	o, err := repo.FindByID(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	s := o.Snapshot()
	if s.Status != domain.OrderPaid {
		t.Errorf("Status = %q, want paid", s.Status)
	}
	if s.PayedAt == nil || !s.PayedAt.Equal(payed) {
		t.Errorf("PayedAt = %v, want %v", s.PayedAt, payed)
	}
	if len(s.Lines) != 1 || s.Lines[0].Quantity != 2 {
		t.Errorf("unexpected lines: %+v", s.Lines)
	}
	if s.TotalPriceCents != 19998 {
		t.Errorf("TotalPriceCents = %d, want 19998", s.TotalPriceCents)
	}
}

func TestOrderRepo_FindByID_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`FROM orders`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewOrderRepo(db)
	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, order.ErrNotFound) {
		t.Errorf("FindByID error = %v, want ErrNotFound", err)
	}
}

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTxManager(db)
	err := m.WithinTx(context.Background(), func(ctx context.Context, repos order.TxRepos) error {
		if repos.Orders == nil || repos.Products == nil {
			t.Fatal("TxRepos not wired")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := NewTxManager(db)
	wantErr := errors.New("payment failed")
	err := m.WithinTx(context.Background(), func(ctx context.Context, repos order.TxRepos) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("WithinTx error = %v, want %v", err, wantErr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
