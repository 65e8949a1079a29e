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

// seriesRepository implements the repository.SeriesRepository interface.
type seriesRepository struct {
	db *gorm.DB
}

// NewSeriesRepository is the constructor for seriesRepository.
func NewSeriesRepository(db *gorm.DB) repository.SeriesRepository {
	return &seriesRepository{db: db}
}

// FindByID retrieves a single series by its unique ID.
func (repo *seriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	var seriesM model.SeriesModel
	if err := repo.db.WithContext(ctx).
		Preload("Posts", "published = ?", true).
		Where("id = ?", id).
		First(&seriesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSeriesNotFound
		}

		return nil, errors.WithStack(err)
	}

	return seriesM.ToEntity(), nil
}

// FindBySlug retrieves a single series by its slug, with its published posts
// in curated order.
func (repo *seriesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Series, error) {
	var seriesM model.SeriesModel
	if err := repo.db.WithContext(ctx).
		Preload("Posts", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("published = ?", true).Order("series_order ASC")
		}).
		Where("slug = ?", slug).
		First(&seriesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSeriesNotFound
		}

		return nil, errors.WithStack(err)
	}

	return seriesM.ToEntity(), nil
}

// List retrieves all series, newest first.
func (repo *seriesRepository) List(ctx context.Context) ([]*entity.Series, error) {
	var seriesModels []model.SeriesModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&seriesModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	list := make([]*entity.Series, 0, len(seriesModels))
	for i := range seriesModels {
		list = append(list, seriesModels[i].ToEntity())
	}

	return list, nil
}

// Create persists a new series.
func (repo *seriesRepository) Create(ctx context.Context, series *entity.Series) error {
	seriesM := model.SeriesModelFromEntity(series)

	if err := repo.db.WithContext(ctx).Create(seriesM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create series")
	}

	series.ID = seriesM.ID
	series.CreatedAt = seriesM.CreatedAt
	series.UpdatedAt = seriesM.UpdatedAt

	return nil
}

// Update modifies an existing series.
func (repo *seriesRepository) Update(ctx context.Context, series *entity.Series) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SeriesModel{}).
		Where("id = ?", series.ID).
		Updates(map[string]any{
			"title":           series.Title,
			"slug":            series.Slug,
			"description":     series.Description,
			"cover_image_url": series.CoverImageURL,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update series")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSeriesNotFound
	}

	return nil
}

// Delete removes a series after detaching its posts.
func (repo *seriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Member posts survive with their series reference cleared.
	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("series_id = ?", id).
		Updates(map[string]any{"series_id": nil, "series_order": 0}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach series posts")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SeriesModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSeriesNotFound
	}

	return nil
}
