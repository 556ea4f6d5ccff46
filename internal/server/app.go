// Package server initializes and runs the backend application: it wires
// the configuration, logging, the external record store client, the
// relational storage and the HTTP server, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vrajdev/sadhana-backend/internal/logging"
	"github.com/vrajdev/sadhana-backend/internal/server/accounts"
	"github.com/vrajdev/sadhana-backend/internal/server/blog"
	"github.com/vrajdev/sadhana-backend/internal/server/catalog"
	"github.com/vrajdev/sadhana-backend/internal/server/config"
	"github.com/vrajdev/sadhana-backend/internal/server/httpapi"
	"github.com/vrajdev/sadhana-backend/internal/server/media"
	"github.com/vrajdev/sadhana-backend/internal/server/sadhana"
	"github.com/vrajdev/sadhana-backend/internal/server/shared/db"
	"github.com/vrajdev/sadhana-backend/internal/server/teable"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store := teable.NewClient(c.TeableBaseURL, c.TeableAPIKey, c.UpstreamTimeout)

	accountService := accounts.NewService(store, c)
	sadhanaService := sadhana.NewService(store)
	catalogService := catalog.NewService(store, c)
	blogService := blog.NewService(rm.Posts())
	mediaService := media.NewService(c)

	httpServer := httpapi.NewServer(c.EndpointAddr, logger,
		accountService, sadhanaService, catalogService, blogService, mediaService,
		c.SecretKey)

	return &App{config: c, logger: logger, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
