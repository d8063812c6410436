package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/mock"
	"github.com/mnpat/go-portfolio/internal/service"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/models"
)

type handlerMocks struct {
	users          *mock.MockUserRepository
	contacts       *mock.MockContactRepository
	projects       *mock.MockProjectRepository
	qualifications *mock.MockQualificationRepository
}

func newTestHandler(t *testing.T) (*Handler, *handlerMocks) {
	ctrl := gomock.NewController(t)
	mocks := &handlerMocks{
		users:          mock.NewMockUserRepository(ctrl),
		contacts:       mock.NewMockContactRepository(ctrl),
		projects:       mock.NewMockProjectRepository(ctrl),
		qualifications: mock.NewMockQualificationRepository(ctrl),
	}

	repos := &store.Repositories{
		Users:          mocks.users,
		Contacts:       mocks.contacts,
		Projects:       mocks.projects,
		Qualifications: mocks.qualifications,
	}

	cfg := &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-portfolio",
			TokenDuration: 7 * 24 * time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
	}

	log := logger.Nop()
	services := service.NewServices(repos, cfg, log)

	return NewHandler(services, log), mocks
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 1
			user.CreatedAt = time.Now()
			user.UpdatedAt = user.CreatedAt
			return user, nil
		},
	)

	rec := doJSON(t, router, http.MethodPost, "/api/users", models.RegisterRequest{
		Name:     "Tess",
		Email:    "t@example.com",
		Password: "pass123",
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "t@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin())
	assert.NotEmpty(t, resp.Token)

	// the response body must never contain the password hash
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	rec := doJSON(t, router, http.MethodPost, "/api/users", models.RegisterRequest{
		Name:     "Tess",
		Email:    "t@example.com",
		Password: "pass123",
	}, nil)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "email already exists", resp.Message)
}

func TestRegisterEndpoint_ValidationFailure(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rec := doJSON(t, router, http.MethodPost, "/api/users", models.RegisterRequest{
		Name:     "Tess",
		Email:    "t@example.com",
		Password: "short",
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Password", resp.Errors[0].Field)
}

func TestRegisterEndpoint_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint_Success(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)

	mocks.users.EXPECT().FindUserByEmail(gomock.Any(), "t@example.com").Return(models.User{
		ID:           1,
		Name:         "Tess",
		Email:        "t@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/users/login", models.LoginRequest{
		Email:    "t@example.com",
		Password: "pass123",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mocks.users.EXPECT().FindUserByEmail(gomock.Any(), "t@example.com").Return(models.User{
		ID:           1,
		Email:        "t@example.com",
		PasswordHash: string(hash),
	}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/users/login", models.LoginRequest{
		Email:    "t@example.com",
		Password: "wrong",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid credentials", resp.Message)
}

func TestLoginEndpoint_UnknownEmailSameBodyAsWrongPassword(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	rec := doJSON(t, router, http.MethodPost, "/api/users/login", models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid credentials", resp.Message)
}

func TestMeEndpoint_ReturnsFreshRole(t *testing.T) {
	h, mocks := newTestHandler(t)
	router := h.Init()

	token, err := h.services.AuthService.CreateToken(context.Background(), models.User{ID: 1})
	require.NoError(t, err)

	// role was promoted after the token was issued; /me must reflect it
	mocks.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{
		ID:    1,
		Email: "t@example.com",
		Role:  models.RoleAdmin,
	}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", nil, map[string]string{
		"Authorization": "Bearer " + token.SignedString,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PublicUser
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, models.RoleAdmin, resp.Role)
}
