package tui

import (
	"context"
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

// newTestSession builds a session in one of four states: still loading,
// hydrated but anonymous, signed in as a regular user, or signed in as an
// admin. No request ever leaves the adapter in these tests.
func newTestSession(t *testing.T, hydrate bool, role models.Role) *session.Session {
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

	s := session.NewSession(store, serverAdapter, logger.Nop())
	if !hydrate {
		return s
	}

	s.Hydrate(context.Background())
	if role != "" {
		s.Login(models.AuthResponse{
			User:  models.PublicUser{ID: 7, Name: "Guard", Email: "g@example.com", Role: role},
			Token: "guard-token",
		})
	}

	return s
}

func TestGuard_Evaluate(t *testing.T) {
	publicRoute := Route{Name: "projects"}
	authRoute := Route{Name: "profile", RequiresAuth: true}
	adminRoute := Route{Name: "contacts", AdminOnly: true}

	tests := []struct {
		name    string
		hydrate bool
		role    models.Role
		route   Route
		want    GuardDecision
	}{
		{
			name:    "public route renders while loading",
			hydrate: false,
			route:   publicRoute,
			want:    DecisionRender,
		},
		{
			name:    "public route renders for anonymous user",
			hydrate: true,
			route:   publicRoute,
			want:    DecisionRender,
		},
		{
			name:    "auth route waits while loading",
			hydrate: false,
			route:   authRoute,
			want:    DecisionWait,
		},
		{
			name:    "admin route waits while loading",
			hydrate: false,
			route:   adminRoute,
			want:    DecisionWait,
		},
		{
			name:    "auth route redirects anonymous user to sign-in",
			hydrate: true,
			route:   authRoute,
			want:    DecisionRedirectSignIn,
		},
		{
			name:    "auth route renders for signed-in user",
			hydrate: true,
			role:    models.RoleUser,
			route:   authRoute,
			want:    DecisionRender,
		},
		{
			name:    "admin route redirects anonymous user, not denies",
			hydrate: true,
			route:   adminRoute,
			want:    DecisionRedirectSignIn,
		},
		{
			name:    "admin route denies regular user in place",
			hydrate: true,
			role:    models.RoleUser,
			route:   adminRoute,
			want:    DecisionDenied,
		},
		{
			name:    "admin route renders for admin",
			hydrate: true,
			role:    models.RoleAdmin,
			route:   adminRoute,
			want:    DecisionRender,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			guard := NewGuard(newTestSession(t, test.hydrate, test.role))

			assert.Equal(t, test.want, guard.Evaluate(test.route))
		})
	}
}

func TestGuard_AdminOnlyImpliesAuth(t *testing.T) {
	// AdminOnly alone must behave as an authenticated route even when
	// RequiresAuth was left unset.
	guard := NewGuard(newTestSession(t, true, ""))

	decision := guard.Evaluate(Route{Name: "users", AdminOnly: true})

	assert.Equal(t, DecisionRedirectSignIn, decision)
}
