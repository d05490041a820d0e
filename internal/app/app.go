package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/adapter/redis"
	"github.com/heartmarshall/ecomind-backend/internal/auth"
	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/transport/middleware"
	"github.com/heartmarshall/ecomind-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration from configPath (or
// CONFIG_PATH), connects to the database, wires services and serves HTTP
// until ctx is canceled, then shuts down within the configured timeout.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadWithPath(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "server")

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, "ecomind-server")
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svcs, err := NewServices(ctx, cfg, logger, pool, postgres.NewTxManager(pool))
	if err != nil {
		return err
	}

	limiter, cache, stopLimiter := newLimiter(cfg.RateLimit, logger)
	defer stopLimiter()

	handler := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(pool, cache, svcs.AIConfigured, BuildVersion()),
		Users:         rest.NewUserHandler(svcs.User, logger),
		Privacy:       rest.NewPrivacyHandler(svcs.Privacy, logger),
		AI:            rest.NewAIHandler(svcs.AI, logger),
		Relationships: rest.NewRelationshipHandler(svcs.Relationships, logger),
	}, rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		Validator: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails. In-flight requests
// get shutdownTimeout to finish.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

// newLimiter picks the shared Redis limiter when configured, otherwise an
// in-process one. cache is nil for the in-process limiter.
func newLimiter(cfg config.RateLimitConfig, logger *slog.Logger) (limiter middleware.Limiter, cache rest.Pinger, stop func()) {
	if cfg.UsesRedis() {
		client := redis.NewClient(cfg)
		l := redis.NewLimiter(client, cfg.AIRequestsPerMinute, time.Minute, logger)
		return l, l, func() { client.Close() }
	}

	rl := middleware.NewRateLimiter(cfg.AIRequestsPerMinute, time.Minute)
	return rl, nil, rl.Stop
}
