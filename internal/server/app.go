// Package server initializes and runs the charlore-api application: it
// wires the configuration, storage, auth primitives and services together
// and drives the HTTP server until shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/KarloJair/charlore-api/internal/logging"
	"github.com/KarloJair/charlore-api/internal/server/auth"
	"github.com/KarloJair/charlore-api/internal/server/collections"
	"github.com/KarloJair/charlore-api/internal/server/config"
	"github.com/KarloJair/charlore-api/internal/server/elements"
	"github.com/KarloJair/charlore-api/internal/server/encyclopedias"
	"github.com/KarloJair/charlore-api/internal/server/httpapi"
	"github.com/KarloJair/charlore-api/internal/server/shared/db"
	"github.com/KarloJair/charlore-api/internal/server/tags"
	"github.com/KarloJair/charlore-api/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewHasher()
	codec := auth.NewCodec([]byte(cfg.SecretKey), cfg.AccessTokenTTL)

	us := users.NewService(repos.Users(), hasher, codec)
	es := encyclopedias.NewService(repos.Encyclopedias(), repos.Users())
	cs := collections.NewService(repos.Collections(), repos.Encyclopedias())
	els := elements.NewService(repos.Elements(), repos.Collections())
	ts := tags.NewService(repos.Tags())

	srv, err := httpapi.NewServer(cfg.Address, logger, codec, us, es, cs, els, ts)
	if err != nil {
		return nil, fmt.Errorf("server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, server: srv}, nil
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
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
