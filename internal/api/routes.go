package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures the router with all API routes.
func SetupRoutes(h *Handlers, hc *HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", hc.HandleHealth)
	r.Get("/health/details", hc.HandleHealthDetails)
	r.Get("/health/live", hc.HandleLiveness)
	r.Get("/health/ready", hc.HandleReadiness)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.HandleListCategories)
		r.Post("/", h.HandleCreateCategory)
		r.Get("/{id}", h.HandleGetCategory)
		r.Put("/{id}", h.HandleUpdateCategory)
		r.Delete("/{id}", h.HandleDeleteCategory)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.HandleListProducts)
		r.Post("/", h.HandleCreateProduct)
		r.Get("/{id}", h.HandleGetProduct)
		r.Put("/{id}", h.HandleUpdateProduct)
		r.Delete("/{id}", h.HandleDeleteProduct)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.HandleListOrders)
		r.Post("/", h.HandleCreateOrder)
		r.Get("/{id}", h.HandleGetOrder)
		r.Post("/{id}/items", h.HandleAddOrderItem)
		r.Post("/{id}/pay", h.HandlePayOrder)
		r.Post("/{id}/cancel", h.HandleCancelOrder)
		r.Post("/{id}/ship", h.HandleShipOrder)
	})

	return r
}
