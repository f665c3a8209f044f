// Command seed wipes the shop tables and loads a small demo catalog.
package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/maisonlabs/boutique/internal/config"
	"github.com/maisonlabs/boutique/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Database.URL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeding completed")
}

func seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`TRUNCATE TABLE order_lines, orders, products, categories CASCADE`); err != nil {
		return err
	}

	electronicsID := uuid.New().String()
	booksID := uuid.New().String()
	clothingID := uuid.New().String()

	logger.Info("inserting categories")
	if _, err := db.ExecContext(ctx, `
		INSERT INTO categories (id, title, description, color) VALUES
		($1, 'Electronics', 'Gadgets and devices', '#FF0000'),
		($2, 'Books', 'Readables', '#00FF00'),
		($3, 'Clothing', 'Wearables', '#0000FF')
	`, electronicsID, booksID, clothingID); err != nil {
		return err
	}

	logger.Info("inserting products")
	if _, err := db.ExecContext(ctx, `
		INSERT INTO products (id, title, description, price_cents, promo_price_cents, category_id, stock) VALUES
		($1, 'MacBook Pro', 'M2 Beast', 200000, 190000, $2, 10),
		($3, 'Kindle', 'E-reader', 10000, NULL, $4, 50),
		($5, 'T-Shirt', 'Cotton basic', 2000, NULL, $6, 100)
	`, uuid.New().String(), electronicsID,
		uuid.New().String(), booksID,
		uuid.New().String(), clothingID); err != nil {
		return err
	}

	return nil
}
