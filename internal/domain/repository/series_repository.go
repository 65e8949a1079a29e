package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSeriesNotFound is returned when a series is not found.
var ErrSeriesNotFound = errors.New("series not found")

// SeriesRepository defines the standard operations for series persistence.
type SeriesRepository interface {
	// FindByID retrieves a single series by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error)

	// FindBySlug retrieves a single series by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Series, error)

	// List retrieves all series, newest first.
	List(ctx context.Context) ([]*entity.Series, error)

	// Create persists a new series.
	Create(ctx context.Context, series *entity.Series) error

	// Update modifies an existing series.
	Update(ctx context.Context, series *entity.Series) error

	// Delete removes a series; member posts survive with their series
	// reference cleared.
	Delete(ctx context.Context, id uuid.UUID) error
}
