package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListPostsInput narrows the public post listing.
type ListPostsInput struct {
	SeriesSlug string
	Page       int
	PerPage    int
}

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Title         string
	Slug          string
	Summary       string
	Content       string
	CoverImageURL string
	SeriesID      *uuid.UUID
	SeriesOrder   int
	AuthorID      uuid.UUID
}

// UpdatePostInput defines the data required to update a post.
type UpdatePostInput struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Summary       string
	Content       string
	CoverImageURL string
	SeriesID      *uuid.UUID
	SeriesOrder   int
}

// --- Output DTOs ---

// ListPostsOutput returns one page of published posts with the total count.
type ListPostsOutput struct {
	Posts []*entity.Post
	Total int64
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// ListPublished returns a page of published posts, newest first, with
	// like and view counts attached.
	ListPublished(ctx context.Context, input *ListPostsInput) (*ListPostsOutput, error)

	// GetBySlug fetches one published post and records a view when viewerID
	// is non-nil. Drafts are visible only when includeDrafts is set (admin).
	GetBySlug(ctx context.Context, slug string, viewerID *uuid.UUID, includeDrafts bool) (*entity.Post, error)

	// Create persists a new draft post.
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// Update modifies an existing post.
	Update(ctx context.Context, input *UpdatePostInput) (*entity.Post, error)

	// Delete removes a post and its reactions.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPublished flips a post's published state, stamps PublishedAt on the
	// first publish and emits a post event.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*entity.Post, error)

	// ToggleLike flips the caller's like on a post and returns the new state
	// plus the fresh count.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (liked bool, likeCount int64, err error)

	// ShareQR renders a PNG QR code of the post's canonical URL.
	ShareQR(ctx context.Context, slug string) ([]byte, error)
}
