package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 8
	bcryptCost        = 10
)

type userService struct {
	repo   Repository
	tokens TokenIssuer
}

// NewUserService creates the account service backing the auth endpoints
func NewUserService(repo Repository, tokens TokenIssuer) Service {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

// Signup creates an account and returns it with a fresh bearer token
func (s *userService) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, NewValidationError("username",
			fmt.Sprintf("username must be %d-%d characters", minUsernameLength, maxUsernameLength))
	}
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.newSession(created)
}

// Login verifies the credentials and returns a fresh bearer token
func (s *userService) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// GetByID returns the account or ErrUserNotFound
func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) newSession(user *User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}
