// Package server wires the stub backend together: accounts, the resume
// store and its fixtures, and the HTTP transport. It handles graceful shutdown
// on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/resumerag/internal/logging"
	"github.com/dmitrijs2005/resumerag/internal/server/config"
	"github.com/dmitrijs2005/resumerag/internal/server/rest"
	"github.com/dmitrijs2005/resumerag/internal/server/resumes"
	"github.com/dmitrijs2005/resumerag/internal/server/users"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	userService   *users.Service
	resumeService *resumes.Service
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	fixtures, err := resumes.LoadFixtures(c.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("fixtures init error: %w", err)
	}

	gin.SetMode(c.GinMode)

	us := users.NewService(users.NewMemoryRepository(), c)
	rs := resumes.NewService(fixtures)

	return &App{config: c, logger: logger, userService: us, resumeService: rs}, nil
}

func (app *App) newHTTPServer() *rest.HTTPServer {
	return rest.NewHTTPServer(app.config.Addr, app.logger, app.userService, app.resumeService, app.config.MaxUploadSize)
}

// Handler exposes the API without binding a socket.
func (app *App) Handler() http.Handler {
	return app.newHTTPServer().Router()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.newHTTPServer().Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "fixtures", app.config.FixturesPath)

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")

	return runErr
}
