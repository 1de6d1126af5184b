package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kioko/vaultledger/internal/adapter/http/handler"
	"github.com/kioko/vaultledger/internal/adapter/http/middleware"
	"github.com/kioko/vaultledger/internal/infrastructure/auth"
	"github.com/kioko/vaultledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	VaultHandler          *handler.VaultHandler
	ClientHandler         *handler.ClientHandler
	CertificateHandler    *handler.CertificateHandler
	CashCountHandler      *handler.CashCountHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	JWTManager       *auth.JWTManager
	SessionManager   *auth.SessionManager
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager, cfg.SessionManager))
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Vaults
		r.Route("/vaults", func(r chi.Router) {
			r.Get("/", cfg.VaultHandler.List)
			r.Get("/{id}", cfg.VaultHandler.Get)
			r.Get("/{id}/updates", cfg.VaultHandler.ListUpdates)
			r.Get("/{id}/certificate", cfg.CertificateHandler.Vault)
			r.Post("/{id}/receive", cfg.VaultHandler.Receive)
			r.Post("/{id}/withdraw", cfg.VaultHandler.Withdraw)
		})

		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", cfg.ClientHandler.List)
			r.Get("/{id}", cfg.ClientHandler.Get)
			r.Get("/{id}/updates", cfg.ClientHandler.ListUpdates)
			r.Get("/{id}/certificate", cfg.CertificateHandler.Client)
		})

		// Cash counts and processing
		r.Route("/cash-counts", func(r chi.Router) {
			r.Post("/", cfg.CashCountHandler.Create)
			r.Get("/", cfg.CashCountHandler.List)
			r.Get("/{id}", cfg.CashCountHandler.Get)
			r.Delete("/{id}", cfg.CashCountHandler.Delete)
			r.Post("/{id}/reconcile", cfg.ReconciliationHandler.Reconcile)
			r.Post("/{id}/process", cfg.ReconciliationHandler.Process)
		})

		r.Get("/cash-processing", cfg.ReconciliationHandler.ListHistory)
	})

	return r
}
