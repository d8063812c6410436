package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnpat/go-portfolio/internal/adapter"
	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/session"
	"github.com/mnpat/go-portfolio/models"
)

// newSignedInApp builds an app model over a hydrated, signed-in session.
// No request ever leaves the adapter.
func newSignedInApp(t *testing.T, role models.Role) (appModel, *session.Session) {
	t.Helper()

	store, err := session.NewSQLiteStore(context.Background(), config.ClientSession{
		DBPath: filepath.Join(t.TempDir(), "session.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress: "http://localhost:1",
	}, logger.Nop())
	require.NoError(t, err)

	sess := session.NewSession(store, serverAdapter, logger.Nop())
	sess.Hydrate(context.Background())
	sess.Login(models.AuthResponse{
		User:  models.PublicUser{ID: 3, Name: "App", Email: "app@example.com", Role: role},
		Token: "app-token",
	})

	return newAppModel(context.Background(), serverAdapter, sess), sess
}

func TestUnauthorizedProfileLoadRedirectsToSignIn(t *testing.T) {
	m, sess := newSignedInApp(t, models.RoleUser)
	m.currentScreen = screenProfile

	updated, _ := m.Update(profileLoadedMsg{err: adapter.ErrUnauthorized})

	result := updated.(appModel)
	assert.Equal(t, screenSignIn, result.currentScreen)
	assert.False(t, sess.IsAuthenticated())
}

func TestUnauthorizedContactsLoadRedirectsToSignIn(t *testing.T) {
	m, sess := newSignedInApp(t, models.RoleAdmin)
	m.currentScreen = screenContacts

	updated, _ := m.Update(contactsLoadedMsg{err: adapter.ErrUnauthorized})

	result := updated.(appModel)
	assert.Equal(t, screenSignIn, result.currentScreen)
	assert.False(t, sess.IsAuthenticated())
}

func TestUnrelatedProfileErrorKeepsSession(t *testing.T) {
	m, sess := newSignedInApp(t, models.RoleUser)
	m.currentScreen = screenProfile

	updated, _ := m.Update(profileLoadedMsg{err: errors.New("connection refused")})

	result := updated.(appModel)
	assert.Equal(t, screenProfile, result.currentScreen)
	assert.True(t, result.showError)
	assert.True(t, sess.IsAuthenticated())
}
