// Package server initializes and runs the application: it opens the storage
// backends, wires the services, and starts the HTTP server and the
// thumbnail worker, shutting both down gracefully on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filehub/internal/logging"
	"github.com/dmitrijs2005/filehub/internal/server/blob"
	"github.com/dmitrijs2005/filehub/internal/server/config"
	"github.com/dmitrijs2005/filehub/internal/server/files"
	"github.com/dmitrijs2005/filehub/internal/server/httpapi"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filehub/internal/server/sessions"
	"github.com/dmitrijs2005/filehub/internal/server/thumbs"
	"github.com/dmitrijs2005/filehub/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	rm     repomanager.RepositoryManager
	server *httpapi.Server
	worker *thumbs.Worker
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON()

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	queue := thumbs.NewChanQueue(cfg.ThumbQueueSize)

	us := users.NewService(rm.Users())
	ss := sessions.NewService(rm.Sessions(), cfg.SessionTTL)
	fs := files.NewService(rm.Files(), blobs, queue, logger)

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, ss, fs, rm, blobs)
	worker := thumbs.NewWorker(queue, rm.Files(), blobs, logger)

	return &App{config: cfg, logger: logger, rm: rm, server: srv, worker: worker}, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	if cfg.BlobBackend == "s3" {
		return blob.NewS3Store(ctx, cfg)
	}
	return blob.NewFSStore(cfg.StorageDir), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.worker.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.rm.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
