package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Ripple/internal/api/middleware"
	"Ripple/internal/api/routes"
	"Ripple/internal/auth"
	"Ripple/internal/core/users"
)

// MockService is a mock implementation of users.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Signup(ctx context.Context, req users.SignupRequest) (*users.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req users.LoginRequest) (*users.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func setup(t *testing.T) (*MockService, *chi.Mux, *auth.Manager) {
	t.Helper()

	svc := new(MockService)
	tokens := auth.NewManager("test-secret", time.Minute)
	r := chi.NewRouter()
	routes.RegisterAuthRoutes(r, svc, middleware.NewAuth(tokens))

	return svc, r, tokens
}

func TestSignup_Created(t *testing.T) {
	svc, r, _ := setup(t)

	svc.On("Signup", mock.Anything, users.SignupRequest{
		Username: "alice", Email: "a@b.c", Password: "longenough",
	}).Return(&users.Session{
		User:  &users.User{ID: "user-1", Username: "alice", Email: "a@b.c"},
		Token: "tok",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"username":"alice","email":"a@b.c","password":"longenough"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var env struct {
		Success bool          `json:"success"`
		Data    users.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "tok", env.Data.Token)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, r, _ := setup(t)

	svc.On("Signup", mock.Anything, mock.Anything).Return(nil, users.ErrEmailTaken)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"username":"alice","email":"a@b.c","password":"longenough"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, r, _ := setup(t)

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, users.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	svc, r, tokens := setup(t)

	svc.On("GetByID", mock.Anything, "user-1").
		Return(&users.User{ID: "user-1", Username: "alice"}, nil)

	token, err := tokens.Issue("user-1", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_MissingUser(t *testing.T) {
	svc, r, tokens := setup(t)

	svc.On("GetByID", mock.Anything, "user-9").Return(nil, users.ErrUserNotFound)

	token, err := tokens.Issue("user-9", "ghost")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
