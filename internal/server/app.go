// Package server wires the Swadesh application together: database, schema
// migrations, services, the AI proxy and the HTTP transport, with graceful
// shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/zaidasim/swadesh/internal/logging"
	"github.com/zaidasim/swadesh/internal/server/ai"
	"github.com/zaidasim/swadesh/internal/server/config"
	"github.com/zaidasim/swadesh/internal/server/httpapi"
	"github.com/zaidasim/swadesh/internal/server/repositories/repomanager"
	"github.com/zaidasim/swadesh/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	manager := repomanager.NewPostgresRepositoryManager()

	sessionService := services.NewSessionService(db, manager, cfg)
	userService := services.NewUserService(db, manager)
	memoryService := services.NewMemoryService(db, manager)
	assistant := ai.NewAssistant(ai.NewAnthropicGenerator(cfg, logger), logger)

	srv := httpapi.NewServer(cfg, logger, sessionService, userService, memoryService, assistant)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// prepareStorage runs the schema migrations and drops session rows whose TTL
// elapsed while the server was down.
func (app *App) prepareStorage(ctx context.Context) error {
	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	purged, err := services.NewSessionService(app.db, manager, app.config).PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("session purge error: %w", err)
	}
	if purged > 0 {
		app.logger.Info(ctx, "Purged expired sessions", "count", purged)
	}
	return nil
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.prepareStorage(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
