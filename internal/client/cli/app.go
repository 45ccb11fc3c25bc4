package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"blogcli/internal/client/api"
	"blogcli/internal/client/cache"
	"blogcli/internal/client/config"
	"blogcli/internal/client/services"
	"blogcli/internal/client/state"
	"blogcli/internal/logging"
)

// App owns the REPL front end: it reads commands, forwards them to the
// gateway services, and renders whatever the state store says afterwards.
type App struct {
	config   *config.Config
	services *services.Services
	store    *state.Store
	repos    *cache.Repositories
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	repos, err := cache.InitDatabase(ctx, c.CacheDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, logger)
	if err != nil {
		repos.DB.Close()
		return nil, err
	}

	store := state.New(c.PageLimit)
	svc := services.New(apiClient, store, repos.Metadata, logger, c.PromptDelay)

	app := &App{
		config:   c,
		services: svc,
		store:    store,
		repos:    repos,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	svc.SetConfirm(app.confirm)
	return app, nil
}

func (a *App) confirm(prompt string) bool {
	ok, err := GetConfirmation(a.reader, prompt, a.out)
	if err != nil {
		return false
	}
	return ok
}

func (a *App) isLoggedIn() bool {
	return a.store.Session.Authenticated
}

// status renders the prompt decoration: username plus a verification mark.
// It runs once per REPL turn, so it also drains callbacks that timers
// queued while the loop was idle.
func (a *App) status() string {
	a.store.RunDeferred()
	sess := &a.store.Session
	if !sess.Authenticated {
		return ""
	}
	s := sess.Username
	if sess.IsVerified() {
		s += " *"
	}
	return fmt.Sprintf("(%s)", s)
}

// Run restores the session, consumes a startup reset token if one was
// supplied, and hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.repos.DB.Close()

	// The cookie jar starts empty, so this cannot restore a previous
	// run's session; it settles the session and phone-cache state into a
	// known baseline before the first prompt.
	_ = a.services.Auth.CheckAuth(ctx)
	a.renderNotification()

	if a.config.ResetToken != "" {
		a.store.ResetPasswordForm.Token = a.config.ResetToken
		a.config.ResetToken = ""
		a.store.OpenModal(state.ModalForgotPassword)
		printlnFn("A password reset was requested for this account.")
		printlnFn("Run 'forgot' to choose a new password.")
	}

	a.store.AppReady = true

	printlnFn("Blog platform CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
