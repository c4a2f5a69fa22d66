package posts

import (
	"time"

	"Ripple/internal/assets"
)

// ImageRef is one image attached to a post. StorageID is the opaque key the
// asset store uses for deletion, distinct from the public URL.
type ImageRef struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// Likes is the deduplicated like set of a post.
// Count always equals the number of entries in Users.
type Likes struct {
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// Comment is owned by its post and has no independent lifecycle.
// Username is a snapshot taken at creation, not live-joined.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is the aggregate root. All mutations to its images, likes and
// comments go through the engagement service; after every successful
// mutation the post carries non-blank content or at least one image.
type Post struct {
	ID                   string     `json:"id"`
	AuthorID             string     `json:"authorId"`
	AuthorUsername       string     `json:"authorUsername"`
	AuthorProfilePicture *string    `json:"authorProfilePicture,omitempty"`
	Content              string     `json:"content"`
	Images               []ImageRef `json:"images"`
	Likes                Likes      `json:"likes"`
	Comments             []Comment  `json:"comments"`
	IsEdited             bool       `json:"isEdited"`
	EditedAt             *time.Time `json:"editedAt,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// AuthorSnapshot is the identity captured onto a post or comment at
// creation time.
type AuthorSnapshot struct {
	ID             string
	Username       string
	ProfilePicture *string
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	AuthorID string
	Content  string
	Uploads  []assets.Upload
}

// UpdatePostRequest represents input for editing a post in place.
// Content nil leaves the text unchanged; an empty string clears it.
type UpdatePostRequest struct {
	PostID         string
	RequesterID    string
	Content        *string
	ImagesToDelete []string
	Uploads        []assets.Upload
}

// AddCommentRequest represents input for appending a comment to a post
type AddCommentRequest struct {
	PostID   string
	AuthorID string
	Text     string
}

// ListFeedRequest carries feed pagination parameters. Values below the
// minimums fall back to page 1 / limit 10.
type ListFeedRequest struct {
	Page  int
	Limit int
}

// Pagination describes the page of a feed response
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasMore     bool `json:"hasMore"`
}

// FeedPage is one page of the feed, newest posts first
type FeedPage struct {
	Posts      []*Post    `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// LikeResult is the outcome of a like toggle.
// Liked reports whether the user likes the post after the toggle.
type LikeResult struct {
	Likes Likes `json:"likes"`
	Liked bool  `json:"liked"`
}
