package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"coin-ledger/internal/config"
	"coin-ledger/internal/database"
	"coin-ledger/internal/handler"
	"coin-ledger/internal/logger"
	"coin-ledger/internal/notifier"
	"coin-ledger/internal/repository/postgres"
	"coin-ledger/internal/service"
	"coin-ledger/internal/worker"

	_ "coin-ledger/docs"
)

// @title Coin Ledger API
// @version 1.0
// @description Wallet transaction engine: coin ledger, purchases, creator earnings and withdrawals
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	purchaseRepo := postgres.NewPurchaseRepository(dbPool)
	contentRepo := postgres.NewContentRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	walletService := service.NewWalletService(ledgerRepo, log)
	balanceNotifier := notifier.New(walletService.GetWalletSnapshot, log)
	purchaseService := service.NewPurchaseService(contentRepo, ledgerRepo, purchaseRepo, userRepo, txManager, balanceNotifier, log)
	withdrawalService := service.NewWithdrawalService(ledgerRepo, userRepo, txManager, balanceNotifier, cfg.Wallet, cfg.Worker, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker dispatching pending withdrawals to the payout processor
	payoutWorker := worker.NewPayoutWorker(withdrawalService, cfg.Worker.PayoutInterval, log)
	payoutWorker.Start(ctx)
	defer payoutWorker.Stop()

	// http handler
	h := handler.NewHandler(purchaseService, walletService, withdrawalService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
