package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectInput defines the data for creating or updating a portfolio project.
type ProjectInput struct {
	Title         string
	Slug          string
	Summary       string
	Description   string
	CoverImageURL string
	RepoURL       string
	DemoURL       string
	TechStack     []string
	Featured      bool
}

// ProjectUsecase defines the interface for portfolio project operations.
type ProjectUsecase interface {
	// List returns all projects, featured first.
	List(ctx context.Context) ([]*entity.Project, error)

	// GetBySlug returns one project.
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)

	// Create persists a new project.
	Create(ctx context.Context, input *ProjectInput) (*entity.Project, error)

	// Update modifies an existing project.
	Update(ctx context.Context, id uuid.UUID, input *ProjectInput) (*entity.Project, error)

	// Delete removes a project.
	Delete(ctx context.Context, id uuid.UUID) error
}
