package users

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Signup creates an account and returns it with a fresh bearer token
	Signup(ctx context.Context, req SignupRequest) (*Session, error)

	// Login verifies the credentials and returns a fresh bearer token
	Login(ctx context.Context, req LoginRequest) (*Session, error)

	// GetByID returns the account or ErrUserNotFound
	GetByID(ctx context.Context, id string) (*User, error)
}

// Repository defines the data access interface for accounts
type Repository interface {
	// Create persists a new account, assigning CreatedAt and UpdatedAt.
	// Returns ErrUsernameTaken or ErrEmailTaken on conflicts.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID returns the account or ErrUserNotFound
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail returns the account or ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// TokenIssuer mints the bearer token handed out at signup and login
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}
