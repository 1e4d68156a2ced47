// Package main is the entrypoint for the claimgate API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yusuke-koga/claimgate/internal/ai"
	"github.com/yusuke-koga/claimgate/internal/ai/gemini"
	"github.com/yusuke-koga/claimgate/internal/ai/mock"
	"github.com/yusuke-koga/claimgate/internal/api"
	"github.com/yusuke-koga/claimgate/internal/api/handler"
	mw "github.com/yusuke-koga/claimgate/internal/api/middleware"
	"github.com/yusuke-koga/claimgate/internal/config"
	"github.com/yusuke-koga/claimgate/internal/prompt"
	"github.com/yusuke-koga/claimgate/internal/ratelimit"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "ai_provider", cfg.AI.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Rate-limit store: shared Redis counter when configured, otherwise a
	// process-local map whose accounting holds for a single instance only.
	var store ratelimit.Store
	if cfg.Redis.URL != "" {
		redisStore, err := ratelimit.NewRedisStore(cfg.Redis.URL, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		if err != nil {
			return fmt.Errorf("create redis rate limit store: %w", err)
		}
		defer redisStore.Close()

		if err := redisStore.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		store = redisStore
		slog.Info("rate limiting via redis")
	} else {
		store = ratelimit.NewMemoryStore(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		slog.Info("rate limiting in memory", "limit", cfg.RateLimit.Requests, "window", cfg.RateLimit.Window)
	}

	provider, err := newProvider(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("create AI provider: %w", err)
	}
	slog.Info("AI provider initialized", "provider", provider.Name())

	builder := prompt.NewBuilder(cfg.Gateway.MinLogChars, cfg.Gateway.MaxLogChars)
	svc := ai.NewService(provider, builder, cfg.AI.Timeout)

	router := api.NewRouter(api.Dependencies{
		RateLimit:      mw.NewRateLimit(store, cfg.RateLimit.Requests),
		GatewayHandler: handler.NewGatewayHandler(svc, cfg.Gateway.MaxBodyBytes),
		HealthHandler:  handler.NewHealthHandler(store, provider.Name()),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newProvider constructs the configured AI provider. Called once at server
// startup.
func newProvider(ctx context.Context, cfg config.AIConfig) (ai.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewProvider(ctx, cfg.Gemini)
	case "mock":
		return mock.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of gemini, mock", cfg.Provider)
	}
}
