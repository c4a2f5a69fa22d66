package posts

import "context"

// Service defines the business logic interface for the post lifecycle and
// engagement operations. Implementations enforce the content-or-images
// invariant and ownership checks before any repository write.
type Service interface {
	// CreatePost uploads any attached images and persists a new post.
	// Fails with a ValidationError when the trimmed content is empty and
	// no images are attached.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListFeed returns one page of posts, newest first
	ListFeed(ctx context.Context, req ListFeedRequest) (*FeedPage, error)

	// GetPost returns the post or ErrNotFound
	GetPost(ctx context.Context, id string) (*Post, error)

	// ToggleLike adds the username to the post's like set, or removes it
	// if already present. Idempotent per (post, user) pair: toggling twice
	// restores the original state.
	ToggleLike(ctx context.Context, postID, username string) (*LikeResult, error)

	// AddComment appends a comment with a snapshot of the author identity
	AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error)

	// UpdatePost edits a post in place: deletes the listed images, appends
	// new uploads, then replaces the content if provided. Owner only.
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)

	// DeletePostImage removes a single image from a post and from the
	// asset store. Owner only. The last image of a content-less post
	// cannot be removed.
	DeletePostImage(ctx context.Context, postID, requesterID, storageID string) (*Post, error)

	// DeletePost removes the post record after attempting deletion of
	// every owned asset. Owner only.
	DeletePost(ctx context.Context, postID, requesterID string) error
}

// Repository defines the data access interface for posts. It is the sole
// synchronization point: Update must replace a post's mutable fields
// atomically, and ToggleLike must apply the set membership change and
// counter adjustment without a read-modify-write of the whole post.
type Repository interface {
	// Create persists a new post, assigning CreatedAt and UpdatedAt
	Create(ctx context.Context, post *Post) (*Post, error)

	// FindByID returns the full aggregate or ErrNotFound
	FindByID(ctx context.Context, id string) (*Post, error)

	// Update replaces content, images and edit markers atomically and
	// bumps UpdatedAt. Returns ErrNotFound if the post was deleted.
	Update(ctx context.Context, post *Post) (*Post, error)

	// DeleteByID removes the post and everything it owns
	DeleteByID(ctx context.Context, id string) error

	// FindPage returns posts ordered by createdAt desc (id desc tiebreak)
	// plus the total post count
	FindPage(ctx context.Context, skip, limit int) ([]*Post, int, error)

	// ToggleLike atomically flips the username's membership in the post's
	// like set, keeping the counter equal to the set size. Returns the
	// resulting like set and whether the user now likes the post.
	ToggleLike(ctx context.Context, postID, username string) (*Likes, bool, error)

	// AddComment appends the comment, assigning its CreatedAt.
	// Returns ErrNotFound if the post does not exist.
	AddComment(ctx context.Context, postID string, comment *Comment) (*Comment, error)
}

// AuthorDirectory resolves a verified user id to the identity snapshot
// stamped onto posts and comments at creation time.
type AuthorDirectory interface {
	// Snapshot returns the author's current identity or ErrAuthorNotFound
	Snapshot(ctx context.Context, userID string) (*AuthorSnapshot, error)
}
