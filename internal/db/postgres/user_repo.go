package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Ripple/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new account
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (id, username, email, hashed_password, profile_picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.HashedPassword, user.ProfilePicture,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			if strings.Contains(err.Error(), "users_username_key") {
				return nil, users.ErrUsernameTaken
			}
			if strings.Contains(err.Error(), "users_email_key") {
				return nil, users.ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves an account by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail retrieves an account by email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *postgresUserRepo) getBy(ctx context.Context, column, value string) (*users.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, hashed_password, profile_picture, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var user users.User
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return &user, nil
}
