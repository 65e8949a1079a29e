package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// SeriesInput defines the data for creating or updating a series.
type SeriesInput struct {
	Title         string
	Slug          string
	Description   string
	CoverImageURL string
}

// SeriesUsecase defines the interface for series-related business operations.
type SeriesUsecase interface {
	// List returns all series, newest first.
	List(ctx context.Context) ([]*entity.Series, error)

	// GetBySlug returns one series with its published posts in curated order.
	GetBySlug(ctx context.Context, slug string) (*entity.Series, error)

	// Create persists a new series.
	Create(ctx context.Context, input *SeriesInput) (*entity.Series, error)

	// Update modifies an existing series.
	Update(ctx context.Context, id uuid.UUID, input *SeriesInput) (*entity.Series, error)

	// Delete removes a series; member posts survive detached.
	Delete(ctx context.Context, id uuid.UUID) error
}
