package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/heartmarshall/miaudota/internal/adapter/shelterapi"
	"github.com/heartmarshall/miaudota/internal/config"
	"github.com/heartmarshall/miaudota/internal/service/catalog"
	"github.com/heartmarshall/miaudota/internal/transport/middleware"
	"github.com/heartmarshall/miaudota/internal/transport/rest"
)

// Run is the gateway entry point. It loads configuration, initializes the
// logger and serves the pets catalog until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting gateway",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", cfg.Server.Addr(), err)
	}

	return Serve(ctx, ln, cfg, logger)
}

// Serve runs the gateway on ln and shuts it down gracefully once ctx is
// done. The listener is closed on return.
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, logger *slog.Logger) error {
	handler, cleanup := NewHandler(cfg, logger)
	defer cleanup()

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down gateway", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return <-errCh
}

// NewHandler wires the gateway: shelter API client, catalog snapshot,
// handlers and the middleware chain. cleanup stops background workers.
func NewHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, func()) {
	client := shelterapi.NewClient(cfg.Upstream, nil, logger)
	catalogSvc := catalog.NewService(logger, client, cfg.Catalog)

	var (
		limiter   *middleware.RateLimiter
		rateLimit middleware.Middleware
		cleanup   = func() {}
	)
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		rateLimit = limiter.Middleware()
		cleanup = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)

	router := rest.NewRouter(
		rest.NewHealthHandler(catalogSvc, Version),
		rest.NewPetsHandler(catalogSvc, cfg.Filter.PageSize, logger),
		chain,
	)
	return router, cleanup
}
