package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc/linecoffee/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *pgxpool.Pool
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Денежные суммы отдаются в JSON числами
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	deps, err := initDependencies(cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	router := setupRouter(deps.handlers, deps.jwtManager, logger)

	return &App{
		config: cfg,
		logger: logger,
		db:     dbPool,
		deps:   deps,
		server: createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает приложение и блокируется до сигнала завершения
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.deps.workerPool.Start(ctx)
	a.logger.Info("alert worker pool started", zap.String("channel", a.config.AlertChannel))

	err := a.runServer(ctx)

	a.shutdown()

	return err
}
