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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sarveshramani/portfolio/config"
	"github.com/sarveshramani/portfolio/internal/api/handlers"
	"github.com/sarveshramani/portfolio/internal/api/routes"
	"github.com/sarveshramani/portfolio/internal/logger"
	"github.com/sarveshramani/portfolio/internal/ratelimit"
	"github.com/sarveshramani/portfolio/internal/services"
	"github.com/sarveshramani/portfolio/internal/storage"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("portfolio api stopped")
	}
}

// buildServer wires services, handlers and middleware onto an http.Server.
// rdb may be nil, which disables rate limiting.
func buildServer(cfg *config.Config, backend *storage.Backend, rdb *redis.Client, log *logrus.Logger) *http.Server {
	svc := services.New(backend.Stores)

	deps := routes.Deps{
		Handlers: handlers.NewSet(svc),
		Log:      log,
		Prefix:   cfg.APIPrefix,

		TrustedProxies: cfg.TrustedProxies,
	}
	if rdb != nil {
		deps.Limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimitPerWindow, cfg.RateLimitWindow, "ratelimit:api")
	}

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewHandler(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			log.WithError(err).Warn("closing storage")
		}
	}()

	rdb, err := config.NewRedis(ctx, cfg)
	if err != nil {
		// limiting is optional; serve without it
		log.WithError(err).Warn("redis unavailable, rate limiting disabled")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		log.WithFields(logrus.Fields{
			"limit":  cfg.RateLimitPerWindow,
			"window": cfg.RateLimitWindow.String(),
		}).Info("rate limiting enabled")
	}

	server := buildServer(cfg, backend, rdb, log)

	serverErrors := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": server.Addr, "driver": backend.Driver}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		log.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("server exited gracefully")
	return nil
}
