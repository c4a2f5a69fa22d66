package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to the database named by TEST_DATABASE_URL, applies the
// migrations and wipes the tables. Tests are skipped when the variable is
// unset so the unit suite stays runnable without Postgres.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../migrations"))

	_, err = db.Exec(`DELETE FROM posts; DELETE FROM users`)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *sql.DB, id, username string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO users (id, username, email, hashed_password)
		VALUES ($1, $2, $3, 'x')
	`, id, username, username+"@test.local")
	require.NoError(t, err)
}

func seedPost(t *testing.T, db *sql.DB, id, authorID string, createdAt time.Time) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO posts (id, author_id, author_username, content, created_at, updated_at)
		VALUES ($1, $2, 'alice', $3, $4, $4)
	`, id, authorID, "post "+id, createdAt)
	require.NoError(t, err)
}

func TestFindPage_NewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewPostRepository(db)

	seedUser(t, db, "user-1", "alice")

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		seedPost(t, db, fmt.Sprintf("post-%d", i), "user-1", base.Add(time.Duration(i)*time.Minute))
	}

	page, total, err := repo.FindPage(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 5)

	for i := 1; i < len(page); i++ {
		assert.False(t, page[i].CreatedAt.After(page[i-1].CreatedAt),
			"post %q is newer than the one before it", page[i].ID)
	}
	assert.Equal(t, "post-4", page[0].ID)
	assert.Equal(t, "post-0", page[4].ID)
}

func TestFindPage_IDTiebreakOnEqualTimestamps(t *testing.T) {
	db := testDB(t)
	repo := NewPostRepository(db)

	seedUser(t, db, "user-1", "alice")

	at := time.Now().UTC().Truncate(time.Second)
	seedPost(t, db, "post-a", "user-1", at)
	seedPost(t, db, "post-b", "user-1", at)

	page, _, err := repo.FindPage(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "post-b", page[0].ID)
	assert.Equal(t, "post-a", page[1].ID)
}

func TestFindPage_OffsetWindow(t *testing.T) {
	db := testDB(t)
	repo := NewPostRepository(db)

	seedUser(t, db, "user-1", "alice")

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		seedPost(t, db, fmt.Sprintf("post-%d", i), "user-1", base.Add(time.Duration(i)*time.Minute))
	}

	page, total, err := repo.FindPage(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "post-2", page[0].ID)
	assert.Equal(t, "post-1", page[1].ID)
}
