package tui

import (
	"errors"
	"strings"

	"github.com/mnpat/go-portfolio/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves the program
// with the quit hotkey.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns transport errors into messages fit for a form
// footer. Connection-level failures all read the same; everything else
// keeps the server's wording.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "context deadline exceeded") {
		return "server is unavailable, try again later"
	}

	if errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrBadRequest) ||
		errors.Is(err, adapter.ErrForbidden) ||
		errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrConflict) {
		// strip the sentinel prefix, keep the server's explanation
		if idx := strings.Index(msg, ": "); idx >= 0 && idx+2 < len(msg) {
			return msg[idx+2:]
		}
	}

	return msg
}
