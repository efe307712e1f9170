package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/user/invoicer/internal/adapter/api"
	"github.com/user/invoicer/internal/adapter/api/handler"
	"github.com/user/invoicer/internal/adapter/api/middleware"
	"github.com/user/invoicer/internal/adapter/metrics"
	"github.com/user/invoicer/internal/adapter/repository/postgres"
	redisrepo "github.com/user/invoicer/internal/adapter/repository/redis"
	"github.com/user/invoicer/internal/pkg/config"
	"github.com/user/invoicer/internal/pkg/logger"
	"github.com/user/invoicer/internal/usecase"

	_ "github.com/lib/pq" // postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.NewActionMetrics()

	// --- Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	go func() {
		logger.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database and Redis Connections ---
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("could not connect to redis, page cache will be cold", "error", err)
	}

	// --- Repositories ---
	invoiceRepo := postgres.NewInvoiceRepository(db, logger)
	customerRepo := postgres.NewCustomerRepository(db)
	revenueRepo := postgres.NewRevenueRepository(db)
	userRepo := postgres.NewUserRepository(db)
	pageCache := redisrepo.NewPageCache(redisClient, logger, cfg.PageCacheTTL)

	// --- Use Cases ---
	createUC := usecase.NewCreateInvoiceUseCase(invoiceRepo, pageCache, logger)
	updateUC := usecase.NewUpdateInvoiceUseCase(invoiceRepo, pageCache, logger)
	deleteUC := usecase.NewDeleteInvoiceUseCase(invoiceRepo, pageCache, logger)
	signer := usecase.NewSignInService(userRepo, logger, cfg.SessionSecret, cfg.SessionTTL)
	authUC := usecase.NewAuthenticateUseCase(signer, logger)

	// --- Handlers and Router ---
	invoiceHandler := handler.NewInvoiceHandler(createUC, updateUC, deleteUC, invoiceRepo, customerRepo, revenueRepo, pageCache, logger, m)
	authHandler := handler.NewAuthHandler(authUC, logger, m, cfg.SessionTTL)
	router := api.NewRouter(cfg, logger, invoiceHandler, authHandler)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      middleware.Logging(logger)(router),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown failed", "error", err)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	logger.Info("servers shut down gracefully")
}
