package impl

import (
	"context"
	"log/slog"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProjectUsecase {
	return &projectService{
		txManager: txManager,
		logger:    logger,
	}
}

// List returns all projects, featured first.
func (srv *projectService) List(ctx context.Context) ([]*entity.Project, error) {
	var list []*entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		list, err = repoFactory.ProjectRepo().List(ctx)

		return errors.Wrap(err, "failed to list projects")
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

// GetBySlug returns one project.
func (srv *projectService) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var project *entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		project, err = repoFactory.ProjectRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return domainerrors.ErrProjectNotFound.WrapMessage("project not found")
			}

			return errors.Wrap(err, "failed to find project")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Create persists a new project.
func (srv *projectService) Create(ctx context.Context, input *usecase.ProjectInput) (*entity.Project, error) {
	project := projectFromInput(input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProjectRepo().Create(ctx, project); err != nil {
			if errors.Is(err, repository.ErrSlugTaken) {
				return domainerrors.ErrSlugTaken.WrapMessage("project slug already in use")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to create project", "error", err, "slug", project.Slug)

		return nil, err
	}
	srv.logger.Info("Project created", "projectID", project.ID, "slug", project.Slug)

	return project, nil
}

// Update modifies an existing project.
func (srv *projectService) Update(ctx context.Context, id uuid.UUID, input *usecase.ProjectInput) (*entity.Project, error) {
	var project *entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.ProjectRepo()

		existing, err := projectRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return domainerrors.ErrProjectNotFound.WrapMessage("project not found")
			}

			return errors.Wrap(err, "failed to find project")
		}

		updated := projectFromInput(input)
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt

		if err := projectRepo.Update(ctx, updated); err != nil {
			if errors.Is(err, repository.ErrSlugTaken) {
				return domainerrors.ErrSlugTaken.WrapMessage("project slug already in use")
			}

			return errors.WithStack(err)
		}
		project = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project.
func (srv *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProjectRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return domainerrors.ErrProjectNotFound.WrapMessage("project not found")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.logger.Info("Project deleted", "projectID", id)

	return nil
}

func projectFromInput(input *usecase.ProjectInput) *entity.Project {
	return &entity.Project{
		Title:         input.Title,
		Slug:          normalizeSlug(input.Slug),
		Summary:       input.Summary,
		Description:   input.Description,
		CoverImageURL: input.CoverImageURL,
		RepoURL:       input.RepoURL,
		DemoURL:       input.DemoURL,
		TechStack:     input.TechStack,
		Featured:      input.Featured,
	}
}
