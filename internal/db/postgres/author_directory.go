package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/posts"
)

type postgresAuthorDirectory struct {
	db *sql.DB
}

// NewAuthorDirectory creates the lookup the engagement service uses to
// snapshot author identity at post and comment creation
func NewAuthorDirectory(db *sql.DB) posts.AuthorDirectory {
	return &postgresAuthorDirectory{db: db}
}

// Snapshot returns the author's current identity or posts.ErrAuthorNotFound
func (d *postgresAuthorDirectory) Snapshot(ctx context.Context, userID string) (*posts.AuthorSnapshot, error) {
	query := `SELECT id, username, profile_picture FROM users WHERE id = $1`

	var snap posts.AuthorSnapshot
	err := d.db.QueryRowContext(ctx, query, userID).Scan(&snap.ID, &snap.Username, &snap.ProfilePicture)
	if err == sql.ErrNoRows {
		return nil, posts.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot author: %w", err)
	}

	return &snap, nil
}
