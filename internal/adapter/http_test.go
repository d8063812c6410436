package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a, srv
}

func TestNewHTTPServerAdapter_AddressValidation(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:5001"},
		{name: "host port only", address: "localhost:5001"},
		{name: "empty", address: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{
				HTTPAddress:    tt.address,
				RequestTimeout: time.Second,
			}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdapterRegister_StoresToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "t@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.AuthResponse{
			User:  models.PublicUser{ID: 1, Email: req.Email, Role: models.RoleUser},
			Token: "issued-token",
		})
	}))

	auth, err := a.Register(context.Background(), models.RegisterRequest{
		Name:     "Tess",
		Email:    "t@example.com",
		Password: "pass123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), auth.User.ID)
	assert.Equal(t, "issued-token", a.Token())
}

func TestAdapterLogin_UnauthorizedMapped(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "invalid credentials"})
	}))

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "t@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Empty(t, a.Token())
}

func TestAdapterRegister_ConflictMapped(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "email already exists"})
	}))

	_, err := a.Register(context.Background(), models.RegisterRequest{
		Name:     "Tess",
		Email:    "t@example.com",
		Password: "pass123",
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestAdapterMe_SendsBearerToken(t *testing.T) {
	var gotAuth string
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PublicUser{ID: 1, Role: models.RoleAdmin})
	}))

	a.SetToken("stored-token")

	user, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
	assert.True(t, user.IsAdmin())
}

func TestAdapterValidationErrorBody(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ValidationErrorResponse{Errors: []models.FieldError{
			{Field: "Password", Message: "must be at least 6 characters long"},
		}})
	}))

	_, err := a.Register(context.Background(), models.RegisterRequest{
		Name:     "Tess",
		Email:    "t@example.com",
		Password: "short",
	})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Password must be at least 6 characters long")
}
