package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mnpat/go-portfolio/internal/adapter"
	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/session"
	"github.com/mnpat/go-portfolio/internal/tui"
)

// App is the terminal client application.
type App struct {
	sessionStore session.Store
	session      *session.Session
	tui          *tui.TUI
	logger       *logger.Logger
}

// NewApp wires the client from configuration: the session store, the HTTP
// server adapter, the session over both, and the terminal UI on top.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	sessionStore, err := session.NewSQLiteStore(ctx, cfg.Session, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		sessionStore.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sess := session.NewSession(sessionStore, serverAdapter, log)
	ui := tui.New(serverAdapter, sess, log)

	return &App{
		sessionStore: sessionStore,
		session:      sess,
		tui:          ui,
		logger:       log,
	}, nil
}

// Run starts the terminal UI and blocks until exit. Leaving with the quit
// hotkey is a normal exit, not an error. The signed-in session stays
// persisted so the next start restores it.
func (a *App) Run(ctx context.Context) error {
	defer a.sessionStore.Close()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	return nil
}
