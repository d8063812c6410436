package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mnpat/go-portfolio/internal/adapter"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/models"
)

// Session is the client-side authentication context.
//
// It exposes three pieces of state: the current user, the bearer token, and
// a loading flag that is true from construction until [Session.Hydrate]
// finishes. Everything else — IsAuthenticated, IsAdmin — is derived from
// the user on every read, never cached, so a role change observed through
// [Session.Refresh] takes effect immediately.
//
// All state transitions are atomic: Login sets user and token together,
// Logout clears them together, and the persisted copy is written or
// removed in the same step. The session can never hold a token without its
// user.
type Session struct {
	mu sync.RWMutex

	user    *models.PublicUser
	token   string
	loading bool

	store   Store
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewSession constructs a Session in the loading state. Call
// [Session.Hydrate] before reading authentication state.
func NewSession(store Store, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Session {
	return &Session{
		loading: true,
		store:   store,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Hydrate restores the persisted session, if any.
//
// A missing session leaves the context unauthenticated. A stored record
// whose user payload cannot be decoded is treated the same way AND removed
// from the store, so one corrupt write cannot wedge the client into a
// half-authenticated state forever. The loading flag is cleared in every
// outcome.
//
// Hydration trusts the stored token without contacting the server; the
// first authenticated request surfaces expiry, which callers route through
// [Session.HandleUnauthorized].
func (s *Session) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	token, userJSON, err := s.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoStoredSession) {
			s.logger.Err(err).Msg("loading persisted session failed")
		}
		return
	}

	var user models.PublicUser
	if err = json.Unmarshal([]byte(userJSON), &user); err != nil || token == "" || user.ID == 0 {
		s.logger.Warn().Err(err).Msg("persisted session is corrupt, clearing it")
		if clearErr := s.store.Clear(); clearErr != nil {
			s.logger.Err(clearErr).Msg("clearing corrupt session failed")
		}
		return
	}

	s.user = &user
	s.token = token
	s.adapter.SetToken(token)

	s.logger.Debug().Int64("id", user.ID).Msg("session hydrated")
}

// Login atomically installs the authenticated state from a successful
// register or login response and persists it.
func (s *Session) Login(auth models.AuthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := auth.User
	s.user = &user
	s.token = auth.Token
	s.adapter.SetToken(auth.Token)

	userJSON, err := json.Marshal(user)
	if err != nil {
		s.logger.Err(err).Msg("serializing session user failed")
		return
	}
	if err = s.store.Save(auth.Token, string(userJSON)); err != nil {
		// in-memory state stays valid; the session just won't survive a
		// restart
		s.logger.Err(err).Msg("persisting session failed")
	}
}

// Logout atomically clears the in-memory state, the persisted copy, and
// the adapter's token.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.adapter.SetToken("")

	if err := s.store.Clear(); err != nil {
		s.logger.Err(err).Msg("clearing persisted session failed")
	}
}

// Refresh re-fetches the current user record from the server so role or
// profile changes made since login become visible. A 401 clears the
// session.
func (s *Session) Refresh(ctx context.Context) error {
	user, err := s.adapter.Me(ctx)
	if err != nil {
		s.HandleUnauthorized(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if userJSON, err := json.Marshal(user); err == nil {
		if saveErr := s.store.Save(s.token, string(userJSON)); saveErr != nil {
			s.logger.Err(saveErr).Msg("persisting refreshed session failed")
		}
	}

	return nil
}

// HandleUnauthorized logs the session out when err is the transport's
// unauthorized sentinel. It is the client-side mirror of a browser app's
// 401 interceptor: any request that comes back 401 means the token is no
// longer good, so the stale session is discarded everywhere at once.
//
// Returns true if the session was cleared.
func (s *Session) HandleUnauthorized(err error) bool {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return false
	}

	s.logger.Warn().Msg("server rejected token, clearing session")
	s.Logout()
	return true
}

// Loading reports whether hydration has finished. Route guards must not
// make authentication decisions while this is true.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// User returns a copy of the current user and whether one is present.
func (s *Session) User() (models.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.PublicUser{}, false
	}
	return *s.user, true
}

// Token returns the current bearer token, or an empty string.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a user is present. Derived on every
// call, never stored.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsAdmin reports whether the current user holds the admin role.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}
