package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/common-nighthawk/go-figure"

	"github.com/dmitrijs2005/resumerag/internal/client/client"
	"github.com/dmitrijs2005/resumerag/internal/client/config"
	"github.com/dmitrijs2005/resumerag/internal/client/models"
	"github.com/dmitrijs2005/resumerag/internal/client/services"
	"github.com/dmitrijs2005/resumerag/internal/client/ui"
	"github.com/dmitrijs2005/resumerag/internal/logging"
)

const appName = "ResumeRAG"

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    client.Client

	store     *services.SessionStore
	auth      *ui.AuthScreen
	dashboard *ui.Dashboard

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and the backend client described by c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err.Error())
		return nil, err
	}

	api, err := client.NewHTTPClient(c.ServerURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "http")),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(c, logger, db, api, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, api client.Client, in io.Reader, out io.Writer) *App {
	store := services.NewSessionStore(db, logger.With("component", "session"))
	authService := services.NewAuthService(api, store, logger.With("component", "auth"))

	return &App{
		config: c,
		logger: logger,
		db:     db,
		api:    api,
		store:  store,
		auth:   ui.NewAuthScreen(authService, logger.With("component", "auth_screen")),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run restores the stored session and runs the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	displayAppname(a.out)

	if _, err := a.store.Load(ctx); err != nil {
		return err
	}
	a.syncScreen()

	if sess := a.store.Current(); sess != nil {
		fmt.Fprintf(a.out, "Welcome back, %s! (type 'help' for commands)\n", displayName(sess.User))
	} else {
		fmt.Fprintln(a.out, "Sign in to continue to ResumeRAG (type 'help' for commands)")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	a.auth.Close()
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Current() != nil
}

// syncScreen picks the screen for the current session. A new session always
// gets a fresh dashboard.
func (a *App) syncScreen() {
	sess := a.store.Current()
	switch {
	case sess == nil:
		a.dashboard = nil
	case a.dashboard == nil || a.dashboard.User().ID != sess.User.ID:
		a.dashboard = ui.NewDashboard(a.api, *sess, a.logger.With("component", "dashboard"))
	}
}

func (a *App) getStatus() string {
	if sess := a.store.Current(); sess != nil {
		return fmt.Sprintf("(%s)", displayName(sess.User))
	}
	return fmt.Sprintf("(%s)", a.auth.Mode())
}

func displayName(u models.User) string {
	if u.Email != "" {
		return u.Email
	}
	return "user " + u.ID
}

func displayAppname(w io.Writer) {
	fmt.Fprintln(w, figure.NewFigure(appName, "cybermedium", true).String())
}
