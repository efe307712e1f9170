package api

import (
	"log/slog"
	"net/http"

	"github.com/user/invoicer/internal/adapter/api/handler"
	"github.com/user/invoicer/internal/adapter/api/middleware"
	"github.com/user/invoicer/internal/pkg/config"
)

// NewRouter creates and configures the main HTTP router for the dashboard
// action service.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	invoiceHandler *handler.InvoiceHandler,
	authHandler *handler.AuthHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Middleware
	session := middleware.Session(cfg.SessionSecret, logger)
	loginLimit := middleware.RateLimit(cfg.LoginRatePerMin, cfg.LoginRateBurst, logger)

	// Sign-in
	mux.Handle("POST /login", loginLimit(http.HandlerFunc(authHandler.Login)))

	// Invoice form actions
	mux.Handle("POST /dashboard/invoices", session(http.HandlerFunc(invoiceHandler.Create)))
	mux.Handle("POST /dashboard/invoices/{id}", session(http.HandlerFunc(invoiceHandler.Update)))
	mux.Handle("POST /dashboard/invoices/{id}/delete", session(http.HandlerFunc(invoiceHandler.Delete)))

	// Dashboard reads
	mux.Handle("GET /dashboard/invoices", session(http.HandlerFunc(invoiceHandler.List)))
	mux.Handle("GET /dashboard/invoices/{id}", session(http.HandlerFunc(invoiceHandler.GetByID)))
	mux.Handle("GET /dashboard/customers", session(http.HandlerFunc(invoiceHandler.Customers)))
	mux.Handle("GET /dashboard/revenue", session(http.HandlerFunc(invoiceHandler.Revenue)))
	mux.Handle("GET /dashboard/cards", session(http.HandlerFunc(invoiceHandler.Cards)))

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}
