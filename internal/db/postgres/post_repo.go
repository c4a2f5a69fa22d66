package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"Ripple/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post and its images in one transaction
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (
			id, author_id, author_username, author_profile_picture, content
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(
		ctx, query,
		post.ID, post.AuthorID, post.AuthorUsername, post.AuthorProfilePicture, post.Content,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := insertImages(ctx, tx, post.ID, post.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

// FindByID retrieves the full aggregate: post row, ordered images,
// like set and ordered comments
func (r *postgresPostRepo) FindByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT
			id, author_id, author_username, author_profile_picture,
			content, likes_count, is_edited, edited_at, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.AuthorUsername, &post.AuthorProfilePicture,
		&post.Content, &post.Likes.Count, &post.IsEdited, &post.EditedAt,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := r.hydrate(ctx, []*posts.Post{&post}); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update replaces content, the image set and edit markers atomically
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE posts
		SET content = $1, is_edited = $2, edited_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		post.Content, post.IsEdited, post.EditedAt, post.ID,
	).Scan(&post.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	// Replace the image set wholesale; positions encode insertion order
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_images WHERE post_id = $1`, post.ID); err != nil {
		return nil, fmt.Errorf("failed to clear post images: %w", err)
	}
	if err := insertImages(ctx, tx, post.ID, post.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

// DeleteByID removes the post; images, likes and comments cascade
func (r *postgresPostRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}
	return nil
}

// FindPage returns posts ordered by created_at desc with id desc as a
// deterministic tiebreak, plus the total post count
func (r *postgresPostRepo) FindPage(ctx context.Context, skip, limit int) ([]*posts.Post, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `
		SELECT
			id, author_id, author_username, author_profile_picture,
			content, likes_count, is_edited, edited_at, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	page := []*posts.Post{}
	for rows.Next() {
		var post posts.Post
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.AuthorUsername, &post.AuthorProfilePicture,
			&post.Content, &post.Likes.Count, &post.IsEdited, &post.EditedAt,
			&post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		page = append(page, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	if err := r.hydrate(ctx, page); err != nil {
		return nil, 0, err
	}

	return page, total, nil
}

// ToggleLike flips the username's membership in the post's like set.
// The membership change and the counter adjustment run in one transaction
// as conditional single-row statements, so two concurrent toggles by
// different users both register and the counter never drifts from the set.
func (r *postgresPostRepo) ToggleLike(ctx context.Context, postID, username string) (*posts.Likes, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO post_likes (post_id, username) VALUES ($1, $2)
		ON CONFLICT (post_id, username) DO NOTHING
	`, postID, username)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return nil, false, posts.ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to insert like: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert like: %w", err)
	}

	liked := inserted == 1
	if liked {
		_, err = tx.ExecContext(ctx,
			`UPDATE posts SET likes_count = likes_count + 1 WHERE id = $1`, postID)
	} else {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM post_likes WHERE post_id = $1 AND username = $2`, postID, username); err == nil {
			// GREATEST guards against a counter that drifted below the set size
			_, err = tx.ExecContext(ctx,
				`UPDATE posts SET likes_count = GREATEST(likes_count - 1, 0) WHERE id = $1`, postID)
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to toggle like: %w", err)
	}

	likes, err := readLikes(ctx, tx, postID)
	if err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return likes, liked, nil
}

// AddComment appends the comment, assigning its creation timestamp
func (r *postgresPostRepo) AddComment(ctx context.Context, postID string, comment *posts.Comment) (*posts.Comment, error) {
	query := `
		INSERT INTO post_comments (id, post_id, user_id, username, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.ID, postID, comment.UserID, comment.Username, comment.Text,
	).Scan(&comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func insertImages(ctx context.Context, tx execQuerier, postID string, images []posts.ImageRef) error {
	for i, img := range images {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO post_images (post_id, storage_id, url, position)
			VALUES ($1, $2, $3, $4)
		`, postID, img.StorageID, img.URL, i)
		if err != nil {
			return fmt.Errorf("failed to insert post image: %w", err)
		}
	}
	return nil
}

func readLikes(ctx context.Context, tx execQuerier, postID string) (*posts.Likes, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT username FROM post_likes WHERE post_id = $1 ORDER BY username`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to read likes: %w", err)
	}
	defer rows.Close()

	likes := posts.Likes{Users: []string{}}
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		likes.Users = append(likes.Users, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read likes: %w", err)
	}

	likes.Count = len(likes.Users)
	return &likes, nil
}

// hydrate fills images, like sets and comments for a batch of posts with
// one query per collection instead of one per post
func (r *postgresPostRepo) hydrate(ctx context.Context, page []*posts.Post) error {
	if len(page) == 0 {
		return nil
	}

	byID := make(map[string]*posts.Post, len(page))
	ids := make([]string, 0, len(page))
	for _, post := range page {
		post.Images = []posts.ImageRef{}
		post.Likes.Users = []string{}
		post.Comments = []posts.Comment{}
		byID[post.ID] = post
		ids = append(ids, post.ID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT post_id, storage_id, url
		FROM post_images
		WHERE post_id = ANY($1)
		ORDER BY post_id, position
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load post images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var img posts.ImageRef
		if err := rows.Scan(&postID, &img.StorageID, &img.URL); err != nil {
			return fmt.Errorf("failed to scan post image: %w", err)
		}
		byID[postID].Images = append(byID[postID].Images, img)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load post images: %w", err)
	}

	likeRows, err := r.db.QueryContext(ctx, `
		SELECT post_id, username
		FROM post_likes
		WHERE post_id = ANY($1)
		ORDER BY post_id, username
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}
	defer likeRows.Close()

	for likeRows.Next() {
		var postID, username string
		if err := likeRows.Scan(&postID, &username); err != nil {
			return fmt.Errorf("failed to scan like: %w", err)
		}
		byID[postID].Likes.Users = append(byID[postID].Likes.Users, username)
	}
	if err := likeRows.Err(); err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}

	// The like set is authoritative; the denormalized counter only serves
	// feed queries mid-toggle
	for _, post := range page {
		post.Likes.Count = len(post.Likes.Users)
	}

	commentRows, err := r.db.QueryContext(ctx, `
		SELECT post_id, id, user_id, username, text, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY post_id, created_at, id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var postID string
		var c posts.Comment
		if err := commentRows.Scan(&postID, &c.ID, &c.UserID, &c.Username, &c.Text, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		byID[postID].Comments = append(byID[postID].Comments, c)
	}
	if err := commentRows.Err(); err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	return nil
}
