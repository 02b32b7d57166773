// Package server wires storage, the market engine and its outer surfaces
// into a runnable process and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/logging"
	"github.com/dmitrijs2005/stakemarket/internal/otelx"
	"github.com/dmitrijs2005/stakemarket/internal/server/config"
	"github.com/dmitrijs2005/stakemarket/internal/server/content"
	"github.com/dmitrijs2005/stakemarket/internal/server/engine"
	"github.com/dmitrijs2005/stakemarket/internal/server/metrics"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/repomanager"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/stakemarket/internal/server/grpc"
)

const serviceName = "stakemarket"

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	engine  *engine.Engine
	metrics *metrics.Metrics
	content *content.Service
}

// newRepositoryManager opens the configured storage backend and brings its
// schema up to date.
func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.Storage == config.StorageMemory {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return m, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, os.Stdout, c.LogDebug)
	if err != nil {
		return nil, err
	}

	repos, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	e := engine.New(repos, engine.Config{
		StakeAmount:   c.StakeAmount,
		EngineAccount: c.EngineAccount,
		VaultAccount:  c.VaultAccount,
	}, logger, engine.WithObserver(m))
	m.RegisterState(e)

	if c.GenesisSupply > 0 {
		err := e.Genesis(ctx, []engine.Allocation{{Account: c.GenesisAccount, Amount: c.GenesisSupply}})
		switch {
		case errors.Is(err, common.ErrGenesisDone):
			logger.Debug(ctx, "genesis already applied")
		case err != nil:
			_ = repos.Close()
			return nil, fmt.Errorf("genesis error: %w", err)
		default:
			logger.Info(ctx, "genesis applied", "account", c.GenesisAccount, "supply", c.GenesisSupply)
		}
	}

	presigner, err := content.NewS3Presigner(ctx, c)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("s3 init error: %w", err)
	}
	cs := content.NewService(presigner, e, e, c.S3Bucket, c.PresignValidity)

	return &App{config: c, logger: logger, repos: repos, engine: e, metrics: m, content: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.engine, app.content, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.MetricsAddr == "" {
		return
	}
	if err := app.metrics.Serve(ctx, app.config.MetricsAddr, app.logger); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	shutdownTracing, err := otelx.Setup(ctx, serviceName, app.config.OTLPEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := shutdownTracing(context.Background()); err != nil {
		app.logger.Warn(context.Background(), "tracing shutdown", "error", err)
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Error(context.Background(), "storage close", "error", err)
	}
	if s, ok := app.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	app.logger.Info(context.Background(), "App stopped")
}
