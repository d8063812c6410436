// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mnpat/go-portfolio/internal/adapter"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/session"
)

// TUI is the terminal front end of the portfolio application.
type TUI struct {
	adapter adapter.ServerAdapter
	session *session.Session
	logger  *logger.Logger
}

// New constructs the TUI over an already-wired adapter and session.
func New(serverAdapter adapter.ServerAdapter, sess *session.Session, log *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, session: sess, logger: log}
}

// Run starts the Bubble Tea program and blocks until the user quits.
// Session hydration runs as the program's first command, so the UI is
// visible immediately while the persisted session is restored.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter, t.session)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		t.logger.Debug().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
