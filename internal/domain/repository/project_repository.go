package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for portfolio projects.
type ProjectRepository interface {
	// FindByID retrieves a single project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindBySlug retrieves a single project by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)

	// List retrieves all projects, featured first, then newest first.
	List(ctx context.Context) ([]*entity.Project, error)

	// Create persists a new project.
	Create(ctx context.Context, project *entity.Project) error

	// Update modifies an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project.
	Delete(ctx context.Context, id uuid.UUID) error
}
