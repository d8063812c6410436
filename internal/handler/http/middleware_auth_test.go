package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

func TestAuthMiddleware(t *testing.T) {
	h, _ := newTestHandler(t)

	token, err := h.services.AuthService.CreateToken(context.Background(), models.User{ID: 42})
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer " + token.SignedString,
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lowercase scheme rejected",
			authHeader: "bearer " + token.SignedString,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme rejected",
			authHeader: "Token " + token.SignedString,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "scheme without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotOK bool

			probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			h.auth(probe).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, gotOK)
				assert.Equal(t, tt.wantUserID, gotUserID)
			} else {
				assert.False(t, gotOK)
			}
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	h, _ := newTestHandler(t)

	expired, err := utils.GenerateJWTToken("go-portfolio", 42, time.Nanosecond, "test-sign-key")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired.SignedString)

	rec := httptest.NewRecorder()
	h.auth(probe).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Run("non-admin denied", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		router := h.Init()

		token, err := h.services.AuthService.CreateToken(context.Background(), models.User{ID: 1})
		require.NoError(t, err)

		mocks.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, Role: models.RoleUser}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/users", nil, map[string]string{
			"Authorization": "Bearer " + token.SignedString,
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		router := h.Init()

		token, err := h.services.AuthService.CreateToken(context.Background(), models.User{ID: 1})
		require.NoError(t, err)

		mocks.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, Role: models.RoleAdmin}, nil)
		mocks.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/users", nil, map[string]string{
			"Authorization": "Bearer " + token.SignedString,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		h, _ := newTestHandler(t)
		router := h.Init()

		rec := doJSON(t, router, http.MethodGet, "/api/users", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
