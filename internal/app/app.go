package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andresmdz/rifa-go/internal/config"
	"github.com/andresmdz/rifa-go/internal/postgres"
	"github.com/andresmdz/rifa-go/internal/redis"
	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
	redisrepo "github.com/andresmdz/rifa-go/internal/repository/redis"
	"github.com/andresmdz/rifa-go/internal/service"
	httpgin "github.com/andresmdz/rifa-go/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redis.New(context.Background(), redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	store := postgresrepo.NewStore(pgxPool)
	if err := store.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize storage schema: %w", err)
	}

	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewEventsPubSub(rdb)
	pending := redisrepo.NewPendingSaleStore(rdb, cfg.Sales.PendingSaleTTL)
	idem := redisrepo.NewIdempotencyStore(rdb, cfg.Sales.IdempotencyTTL)
	limiter := redisrepo.NewSlidingWindowLimiter(
		rdb,
		redisrepo.KeyRateLimit("sales"),
		cfg.Sales.RateLimit,
		cfg.Sales.RateWindow,
	)

	services := service.NewServices(service.Deps{
		Log:      logger,
		Store:    store,
		Cache:    cache,
		PubSub:   pubsub,
		Pending:  pending,
		Idem:     idem,
		Limiter:  limiter,
		CacheTTL: cfg.Sales.QueryCacheTTL,
	})

	router := httpgin.NewRouter(services, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
