package session

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnpat/go-portfolio/internal/adapter"
	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/models"
)

// fakeAdapter implements the parts of adapter.ServerAdapter the session
// touches; the rest delegate to function fields or return zero values.
type fakeAdapter struct {
	token string
	meFn  func(ctx context.Context) (models.PublicUser, error)
}

func (f *fakeAdapter) SetToken(token string) { f.token = token }
func (f *fakeAdapter) Token() string         { return f.token }

func (f *fakeAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	if f.meFn != nil {
		return f.meFn(ctx)
	}
	return models.PublicUser{}, nil
}

func (f *fakeAdapter) Register(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
	return models.AuthResponse{}, nil
}
func (f *fakeAdapter) Login(context.Context, models.LoginRequest) (models.AuthResponse, error) {
	return models.AuthResponse{}, nil
}
func (f *fakeAdapter) SubmitContact(context.Context, models.Contact) (models.Contact, error) {
	return models.Contact{}, nil
}
func (f *fakeAdapter) ListContacts(context.Context) ([]models.Contact, error) { return nil, nil }
func (f *fakeAdapter) DeleteContact(context.Context, int64) error             { return nil }
func (f *fakeAdapter) ListProjects(context.Context) ([]models.Project, error) { return nil, nil }
func (f *fakeAdapter) CreateProject(context.Context, models.Project) (models.Project, error) {
	return models.Project{}, nil
}
func (f *fakeAdapter) UpdateProject(context.Context, int64, models.ProjectUpdate) (models.Project, error) {
	return models.Project{}, nil
}
func (f *fakeAdapter) DeleteProject(context.Context, int64) error { return nil }
func (f *fakeAdapter) ListQualifications(context.Context) ([]models.Qualification, error) {
	return nil, nil
}
func (f *fakeAdapter) CreateQualification(context.Context, models.Qualification) (models.Qualification, error) {
	return models.Qualification{}, nil
}
func (f *fakeAdapter) UpdateQualification(context.Context, int64, models.QualificationUpdate) (models.Qualification, error) {
	return models.Qualification{}, nil
}
func (f *fakeAdapter) DeleteQualification(context.Context, int64) error { return nil }

func newTestStore(t *testing.T) Store {
	t.Helper()

	store, err := NewSQLiteStore(context.Background(), config.ClientSession{
		DBPath: filepath.Join(t.TempDir(), "session.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func testAuthResponse(role models.Role) models.AuthResponse {
	return models.AuthResponse{
		User:  models.PublicUser{ID: 1, Name: "Tess", Email: "t@example.com", Role: role},
		Token: "issued-token",
	}
}

func TestSession_StartsLoading(t *testing.T) {
	s := NewSession(newTestStore(t), &fakeAdapter{}, logger.Nop())

	assert.True(t, s.Loading())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_HydrateEmptyStore(t *testing.T) {
	s := NewSession(newTestStore(t), &fakeAdapter{}, logger.Nop())

	s.Hydrate(context.Background())

	assert.False(t, s.Loading())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())
}

func TestSession_LoginThenHydrateInNewSession(t *testing.T) {
	store := newTestStore(t)
	a := &fakeAdapter{}

	first := NewSession(store, a, logger.Nop())
	first.Hydrate(context.Background())
	first.Login(testAuthResponse(models.RoleUser))

	require.True(t, first.IsAuthenticated())
	assert.Equal(t, "issued-token", a.Token())

	// a fresh session over the same store plays the role of an app restart
	second := NewSession(store, &fakeAdapter{}, logger.Nop())
	second.Hydrate(context.Background())

	assert.False(t, second.Loading())
	require.True(t, second.IsAuthenticated())
	assert.Equal(t, "issued-token", second.Token())

	user, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "t@example.com", user.Email)
}

func TestSession_HydrateCorruptUserClearsStore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("some-token", "{corrupt json"))

	s := NewSession(store, &fakeAdapter{}, logger.Nop())
	s.Hydrate(context.Background())

	assert.False(t, s.Loading())
	assert.False(t, s.IsAuthenticated())

	// the corrupt record must be gone so the next start is clean
	_, _, err := store.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSession_HydrateEmptyTokenClearsStore(t *testing.T) {
	store := newTestStore(t)
	userJSON, err := json.Marshal(models.PublicUser{ID: 1})
	require.NoError(t, err)
	require.NoError(t, store.Save("", string(userJSON)))

	s := NewSession(store, &fakeAdapter{}, logger.Nop())
	s.Hydrate(context.Background())

	assert.False(t, s.IsAuthenticated())
	_, _, err = store.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSession_Logout(t *testing.T) {
	store := newTestStore(t)
	a := &fakeAdapter{}

	s := NewSession(store, a, logger.Nop())
	s.Hydrate(context.Background())
	s.Login(testAuthResponse(models.RoleAdmin))
	require.True(t, s.IsAdmin())

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())
	assert.Empty(t, a.Token())

	_, _, err := store.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSession_IsAdminDerivedFromRole(t *testing.T) {
	s := NewSession(newTestStore(t), &fakeAdapter{}, logger.Nop())
	s.Hydrate(context.Background())

	s.Login(testAuthResponse(models.RoleUser))
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())

	s.Login(testAuthResponse(models.RoleAdmin))
	assert.True(t, s.IsAdmin())
}

func TestSession_HandleUnauthorized(t *testing.T) {
	store := newTestStore(t)
	s := NewSession(store, &fakeAdapter{}, logger.Nop())
	s.Hydrate(context.Background())
	s.Login(testAuthResponse(models.RoleUser))

	// unrelated errors leave the session alone
	cleared := s.HandleUnauthorized(errors.New("network down"))
	assert.False(t, cleared)
	assert.True(t, s.IsAuthenticated())

	// a 401 clears memory and store together
	cleared = s.HandleUnauthorized(adapter.ErrUnauthorized)
	assert.True(t, cleared)
	assert.False(t, s.IsAuthenticated())

	_, _, err := store.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSession_RefreshPicksUpRoleChange(t *testing.T) {
	store := newTestStore(t)
	a := &fakeAdapter{
		meFn: func(context.Context) (models.PublicUser, error) {
			return models.PublicUser{ID: 1, Email: "t@example.com", Role: models.RoleAdmin}, nil
		},
	}

	s := NewSession(store, a, logger.Nop())
	s.Hydrate(context.Background())
	s.Login(testAuthResponse(models.RoleUser))
	require.False(t, s.IsAdmin())

	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.IsAdmin())
}

func TestSession_RefreshUnauthorizedLogsOut(t *testing.T) {
	store := newTestStore(t)
	a := &fakeAdapter{
		meFn: func(context.Context) (models.PublicUser, error) {
			return models.PublicUser{}, adapter.ErrUnauthorized
		},
	}

	s := NewSession(store, a, logger.Nop())
	s.Hydrate(context.Background())
	s.Login(testAuthResponse(models.RoleUser))

	err := s.Refresh(context.Background())
	require.Error(t, err)
	assert.False(t, s.IsAuthenticated())
}
