// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.WithStack(err)
	}

	return projectM.ToEntity(), nil
}

// FindBySlug retrieves a single project by its slug.
func (repo *projectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.WithStack(err)
	}

	return projectM.ToEntity(), nil
}

// List retrieves all projects, featured first, then newest first.
func (repo *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Order("featured DESC, created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	list := make([]*entity.Project, 0, len(projectModels))
	for i := range projectModels {
		list = append(list, projectModels[i].ToEntity())
	}

	return list, nil
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := model.ProjectModelFromEntity(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Update modifies an existing project.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := model.ProjectModelFromEntity(project)

	// Save writes every column, so clearing the featured flag or emptying
	// the tech stack round-trips correctly through the JSON serializer.
	result := repo.db.WithContext(ctx).Save(projectM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}
