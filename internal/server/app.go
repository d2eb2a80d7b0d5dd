// Package server initializes and runs the forum application server.
// It wires storage, the token service, business services, and the HTTP
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ftprojects/forum/internal/logging"
	"github.com/ftprojects/forum/internal/server/auth"
	"github.com/ftprojects/forum/internal/server/config"
	"github.com/ftprojects/forum/internal/server/httpapi"
	"github.com/ftprojects/forum/internal/server/repositories/repomanager"
	"github.com/ftprojects/forum/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := repos.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration, auth.NewInvalidationRegistry())
	hasher := services.BcryptHasher{}

	userService := services.NewUserService(repos.Users(), tokens, hasher)
	threadService := services.NewThreadService(repos.Threads())
	commentService := services.NewCommentService(repos.Comments(), threadService)

	if err := userService.EnsureAdmin(context.Background(), c.AdminUsername, c.AdminPassword, c.AdminTimezone); err != nil {
		return nil, fmt.Errorf("admin seed error: %w", err)
	}

	server := httpapi.NewServer(c.EndpointAddrHTTP, logger, tokens, repos.Users(),
		userService, threadService, commentService)

	return &App{config: c, logger: logger, repos: repos, server: server}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

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

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
