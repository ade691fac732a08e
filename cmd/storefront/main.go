package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jafarshop/storefront/internal/api"
	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/service"
	"github.com/jafarshop/storefront/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := catalog.NewClient(cfg.Catalog, logger)
	services := service.NewServices(client, cfg.Cart.CurrencySymbol, logger)

	var opts []session.Option
	if !cfg.Cart.Enabled {
		logger.Warn("Cart disabled, sessions get a no-op cart")
		opts = append(opts, session.WithStoreFactory(func(*zap.Logger) *cart.Store {
			return cart.Disabled()
		}))
	}
	sessions := session.NewRegistry(cfg.Session.TTL, logger, opts...)
	go sessions.Run(ctx, cfg.Session.SweepInterval)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(cfg, services, sessions, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Storefront listening",
			zap.String("addr", server.Addr),
			zap.String("catalog", cfg.Catalog.BaseURL),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
