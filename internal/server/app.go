// Package server initializes and runs the notes API server. It wires the
// Postgres repository manager, the S3 blob store and the HTTP router, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/logging"
	"github.com/dmitrijs2005/noteapp/internal/server/blobstore"
	"github.com/dmitrijs2005/noteapp/internal/server/config"
	"github.com/dmitrijs2005/noteapp/internal/server/httpapi"
	"github.com/dmitrijs2005/noteapp/internal/server/services"
	"github.com/dmitrijs2005/noteapp/internal/server/shared/db"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       db.RepositoryManager
	noteService *services.NoteService
}

func NewApp(c *config.Config) (*App, error) {

	handler := logging.NewHandler(os.Stdout, logging.ParseLevel(c.LogLevel), c.LogPretty)
	logger := logging.NewSlogLogger(slog.New(handler))

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs := blobstore.NewS3Store(c)
	ns := services.NewNoteService(m.Notes(), blobs, c)

	return &App{config: c, logger: logger, repos: m, noteService: ns}, nil
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

	router := httpapi.NewRouter(app.noteService, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := app.repos.Conn().Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
