package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"Ripple/internal/assets"
)

const (
	// MaxContentLength caps post text
	MaxContentLength = 2000

	// MaxCommentLength caps comment text
	MaxCommentLength = 500

	// DefaultPage and DefaultLimit apply when feed parameters are missing
	// or out of range
	DefaultPage  = 1
	DefaultLimit = 10
)

type postService struct {
	repo    Repository
	store   assets.Store
	authors AuthorDirectory
}

// NewPostService creates the engagement service backing the post endpoints
func NewPostService(repo Repository, store assets.Store, authors AuthorDirectory) Service {
	return &postService{
		repo:    repo,
		store:   store,
		authors: authors,
	}
}

// CreatePost creates a new post.
// Flow:
// 1. Validate content length and the content-or-images invariant
// 2. Snapshot the author identity
// 3. Upload the attached images
// 4. Persist the post with an empty like set and no comments
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	content := req.Content
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, NewValidationError("content", fmt.Sprintf("content must not exceed %d characters", MaxContentLength))
	}
	if strings.TrimSpace(content) == "" && len(req.Uploads) == 0 {
		return nil, NewValidationError("content", "a post needs text or at least one image")
	}

	author, err := s.authors.Snapshot(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	images, err := s.uploadAll(ctx, req.Uploads)
	if err != nil {
		return nil, err
	}

	post := &Post{
		ID:                   uuid.NewString(),
		AuthorID:             author.ID,
		AuthorUsername:       author.Username,
		AuthorProfilePicture: author.ProfilePicture,
		Content:              content,
		Images:               images,
		Likes:                Likes{Count: 0, Users: []string{}},
		Comments:             []Comment{},
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		// The post record never existed; reclaim the uploaded assets.
		s.cleanupAssets(ctx, images)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// ListFeed returns one page of posts, newest first
func (s *postService) ListFeed(ctx context.Context, req ListFeedRequest) (*FeedPage, error) {
	page := req.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	items, total, err := s.repo.FindPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &FeedPage{
		Posts: items,
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasMore:     page < totalPages,
		},
	}, nil
}

// GetPost returns the post or ErrNotFound
func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.repo.FindByID(ctx, id)
}

// ToggleLike flips the username's membership in the post's like set.
// The repository applies the change atomically so concurrent toggles by
// different users never lose updates.
func (s *postService) ToggleLike(ctx context.Context, postID, username string) (*LikeResult, error) {
	likes, liked, err := s.repo.ToggleLike(ctx, postID, username)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Likes: *likes, Liked: liked}, nil
}

// AddComment appends a comment with a snapshot of the author identity
func (s *postService) AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, NewValidationError("text", "comment text is required")
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return nil, NewValidationError("text", fmt.Sprintf("comment must not exceed %d characters", MaxCommentLength))
	}

	author, err := s.authors.Snapshot(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:       uuid.NewString(),
		UserID:   author.ID,
		Username: author.Username,
		Text:     text,
	}

	return s.repo.AddComment(ctx, req.PostID, comment)
}

// UpdatePost edits a post in place. Processing order:
// (a) delete the listed assets and drop the matching image entries
// (b) upload the new images and append them
// (c) replace the content if provided (empty string clears it)
// The content-or-images invariant is re-checked after (a)-(c); on violation
// nothing is persisted. Assets already deleted in (a) are not restored —
// the post record keeps its prior persisted state with dangling entries
// dropped on the next successful edit.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.FindByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != req.RequesterID {
		return nil, ErrForbidden
	}

	if req.Content != nil && utf8.RuneCountInString(*req.Content) > MaxContentLength {
		return nil, NewValidationError("content", fmt.Sprintf("content must not exceed %d characters", MaxContentLength))
	}

	images := post.Images
	for _, storageID := range req.ImagesToDelete {
		if err := s.deleteAsset(ctx, storageID); err != nil {
			return nil, err
		}
		images = removeImage(images, storageID)
	}

	uploaded, err := s.uploadAll(ctx, req.Uploads)
	if err != nil {
		return nil, err
	}
	images = append(images, uploaded...)

	content := post.Content
	if req.Content != nil {
		content = *req.Content
	}

	if strings.TrimSpace(content) == "" && len(images) == 0 {
		return nil, NewValidationError("post", "a post needs text or at least one image")
	}

	now := time.Now().UTC()
	post.Content = content
	post.Images = images
	post.IsEdited = true
	post.EditedAt = &now

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		// The edit was never persisted; reclaim the assets uploaded for it.
		s.cleanupAssets(ctx, uploaded)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// DeletePostImage removes one image from a post and from the asset store.
// The invariant is checked before any side effect: the last image of a
// content-less post stays untouched.
func (s *postService) DeletePostImage(ctx context.Context, postID, requesterID, storageID string) (*Post, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID {
		return nil, ErrForbidden
	}

	if !hasImage(post.Images, storageID) {
		return nil, ErrImageNotFound
	}
	if len(post.Images) == 1 && strings.TrimSpace(post.Content) == "" {
		return nil, NewValidationError("images", "cannot remove the only image of a post without text")
	}

	if err := s.deleteAsset(ctx, storageID); err != nil {
		return nil, err
	}

	post.Images = removeImage(post.Images, storageID)
	return s.repo.Update(ctx, post)
}

// DeletePost deletes the post record after best-effort cleanup of every
// owned asset: one failed deletion is logged and never blocks the rest,
// and an orphaned asset never leaves the record undeletable.
func (s *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return ErrForbidden
	}

	s.cleanupAssets(ctx, post.Images)

	return s.repo.DeleteByID(ctx, postID)
}

// uploadAll sends every upload to the asset store. If one fails, the ones
// already stored are reclaimed best-effort before the error is returned.
func (s *postService) uploadAll(ctx context.Context, uploads []assets.Upload) ([]ImageRef, error) {
	images := make([]ImageRef, 0, len(uploads))
	for _, up := range uploads {
		asset, err := s.store.Upload(ctx, up)
		if err != nil {
			s.cleanupAssets(ctx, images)
			return nil, err
		}
		images = append(images, ImageRef{URL: asset.URL, StorageID: asset.StorageID})
	}
	return images, nil
}

// deleteAsset removes one asset, treating "already absent" as success
func (s *postService) deleteAsset(ctx context.Context, storageID string) error {
	if err := s.store.Delete(ctx, storageID); err != nil && !errors.Is(err, assets.ErrAssetNotFound) {
		return err
	}
	return nil
}

// cleanupAssets attempts every deletion independently, logging failures
func (s *postService) cleanupAssets(ctx context.Context, images []ImageRef) {
	for _, img := range images {
		if err := s.deleteAsset(ctx, img.StorageID); err != nil {
			log.Printf("[POST-CLEANUP] failed to delete asset %s: %v", img.StorageID, err)
		}
	}
}

func hasImage(images []ImageRef, storageID string) bool {
	for _, img := range images {
		if img.StorageID == storageID {
			return true
		}
	}
	return false
}

func removeImage(images []ImageRef, storageID string) []ImageRef {
	out := make([]ImageRef, 0, len(images))
	for _, img := range images {
		if img.StorageID != storageID {
			out = append(out, img)
		}
	}
	return out
}
