package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for content persistence.
var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrSlugTaken is returned when the slug is already in use.
	ErrSlugTaken = errors.New("slug already taken")
)

// PostFilter narrows post listings.
type PostFilter struct {
	// PublishedOnly restricts the listing to published posts; public routes
	// always set this.
	PublishedOnly bool
	// SeriesID restricts the listing to one series when non-nil.
	SeriesID *uuid.UUID
	Limit    int
	Offset   int
}

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindBySlug retrieves a single post by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// List retrieves posts matching the filter, newest published first.
	List(ctx context.Context, filter PostFilter) ([]*entity.Post, error)

	// Count returns the number of posts matching the filter.
	Count(ctx context.Context, filter PostFilter) (int64, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post and, via the schema's cascade, its reactions.
	Delete(ctx context.Context, id uuid.UUID) error
}
