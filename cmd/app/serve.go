package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-directory-service/api"
	"user-directory-service/internal/authz"
	"user-directory-service/internal/config"
	"user-directory-service/internal/database"
	"user-directory-service/internal/domain"
	"user-directory-service/internal/handler"
	"user-directory-service/internal/identity"
	"user-directory-service/internal/ratelimit"
	"user-directory-service/internal/repository"
	"user-directory-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg config.Config, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg, logger)
		},
	}
	cmd.Flags().StringVar(&cfg.ServerPort, "port", cfg.ServerPort, "HTTP port")
	cmd.Flags().StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "user store: postgres, mongo or memory")
	return cmd
}

func serve(cfg config.Config, logger *logrus.Logger) error {
	userRepo, closeStore, err := openUserRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	var limiter handler.RateLimiter
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewClient(context.Background(), cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = ratelimit.NewLimiter(client, cfg.RateLimitPerMinute, time.Minute)
		logger.WithField("per_minute", cfg.RateLimitPerMinute).Info("Rate limiting enabled")
	}
	if cfg.ServiceToken == "" {
		logger.Warn("SERVICE_TOKEN is empty, service token access disabled")
	}

	e := newServer(cfg, userRepo, limiter, logger)

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server exited")
	return nil
}

// newServer собирает use case'ы и HTTP-слой поверх выбранного хранилища.
// limiter может быть nil.
func newServer(cfg config.Config, userRepo domain.UserRepository, limiter handler.RateLimiter, logger *logrus.Logger) *echo.Echo {
	opts := usecase.Options{
		StoreTimeout:   cfg.StoreTimeout,
		SyncTimeout:    cfg.IdentitySyncTimeout,
		ServiceToken:   cfg.ServiceToken,
		SystemUsername: cfg.SystemUsername,
	}

	// Use Cases
	evaluator := authz.NewEvaluator(userRepo)
	syncer := identity.NewClient(cfg.IdentitySyncURL, cfg.IdentitySyncCookie, cfg.IdentitySyncTimeout, logger)
	userUC := usecase.NewUserUseCase(userRepo, evaluator, syncer, opts, logger)
	statsUC := usecase.NewStatsUseCase(userRepo, evaluator, opts)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))
	if limiter != nil {
		e.Use(handler.RateLimitMiddleware(limiter, logger))
	}

	apiHandler := handler.NewAPIHandler(userUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	return e
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openUserRepository выбирает хранилище по STORE_DRIVER.
func openUserRepository(cfg config.Config, logger *logrus.Logger) (domain.UserRepository, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		logger.Info("Database connected")
		return repository.NewUserRepository(db, database.New(db)), db, nil

	case config.StoreDriverMongo:
		client, collection, err := database.NewMongoCollection(context.Background(), cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.WithField("collection", cfg.MongoCollection).Info("Mongo connected")
		return repository.NewMongoUserRepository(collection), closerFunc(func() error {
			return client.Disconnect(context.Background())
		}), nil

	case config.StoreDriverMemory:
		logger.Warn("Using in-memory user store, data is lost on exit")
		return repository.NewMemoryUserRepository(), closerFunc(func() error { return nil }), nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
