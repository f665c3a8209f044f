package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/maisonlabs/boutique/internal/api"
	"github.com/maisonlabs/boutique/internal/cache"
	"github.com/maisonlabs/boutique/internal/config"
	"github.com/maisonlabs/boutique/internal/pkg/logger"
	"github.com/maisonlabs/boutique/internal/repository/memory"
	"github.com/maisonlabs/boutique/internal/repository/postgres"
	"github.com/maisonlabs/boutique/internal/service/category"
	"github.com/maisonlabs/boutique/internal/service/order"
	"github.com/maisonlabs/boutique/internal/service/product"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))

	var (
		db          *sql.DB
		redisClient *redis.Client
	)

	var (
		categoryRepo category.Repository
		productRepo  product.Repository
		orderRepo    order.Repository
		uow          order.UnitOfWork
	)

	if cfg.Database.URL != "" {
		db, err = sql.Open("postgres", cfg.DSN())
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to postgres")

		categoryRepo = postgres.NewCategoryRepo(db)
		productRepo = postgres.NewProductRepo(db)
		orderRepo = postgres.NewOrderRepo(db)
		uow = postgres.NewTxManager(db)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory repositories")
		memOrders := memory.NewOrderRepo()
		memProducts := memory.NewProductRepo()
		categoryRepo = memory.NewCategoryRepo()
		productRepo = memProducts
		orderRepo = memOrders
		uow = memory.NewTxManager(memOrders, memProducts)
	}

	productSvc := product.NewService(productRepo)
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
		productSvc = product.NewServiceWithCache(productRepo, cache.NewProductCache(redisClient))
		logger.Info("product cache enabled", "addr", opts.Addr)
	}

	handlers := api.NewHandlers(
		category.NewService(categoryRepo),
		productSvc,
		order.NewService(orderRepo, productRepo, uow),
	)
	healthChecker := api.NewHealthChecker(db, redisClient)

	srv := api.NewServer(cfg.Addr(), api.SetupRoutes(handlers, healthChecker))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
