package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/skoglund/gatehouse/internal/app/migrate"
	httpx "github.com/skoglund/gatehouse/internal/http"
	"github.com/skoglund/gatehouse/internal/repository/postgres"
	"github.com/skoglund/gatehouse/internal/service/auth"
	"github.com/skoglund/gatehouse/pkg/config"
	"github.com/skoglund/gatehouse/pkg/logger"
	"github.com/skoglund/gatehouse/pkg/token"
)

func main() {
	cfg, err := config.LoadAPIConfig()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	log := logger.New("api", logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// The database may still be coming up alongside this process; retry the
	// initial ping with backoff. Per-request store calls are never retried.
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(time.Second))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			log.Warn("database not ready", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		log.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	migrations, err := migrate.New(cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to configure migrations", "error", err)
		os.Exit(1)
	}
	if err := migrations.Up(ctx); err != nil {
		_ = migrations.Close()
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	if err := migrations.Close(); err != nil {
		log.Warn("closing migration connection failed", "error", err)
	}

	tokens, err := token.NewService(cfg.JWTSecret, "gatehouse")
	if err != nil {
		log.Error("token service misconfigured", "error", err)
		os.Exit(1)
	}

	repo := postgres.New(pool)
	authSvc := auth.New(repo, tokens, log, cfg.TokenTTL)
	router := httpx.NewRouter(log, authSvc, tokens, pool.Ping)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "addr", cfg.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("api server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
