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

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.WithStack(err)
	}

	return postM.ToEntity(), nil
}

// FindBySlug retrieves a single post by its slug.
func (repo *postRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.WithStack(err)
	}

	return postM.ToEntity(), nil
}

// List retrieves posts matching the filter.
// Published posts sort by publication time, drafts by creation time.
func (repo *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, error) {
	var postModels []model.PostModel

	tx := applyPostFilter(repo.db.WithContext(ctx), filter).
		Order("published_at DESC NULLS LAST, created_at DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	if filter.SeriesID != nil {
		// Within a series the curated order wins.
		tx = tx.Order("series_order ASC")
	}

	if err := tx.Find(&postModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, postModels[i].ToEntity())
	}

	return posts, nil
}

// Count returns the number of posts matching the filter.
func (repo *postRepository) Count(ctx context.Context, filter repository.PostFilter) (int64, error) {
	var count int64
	if err := applyPostFilter(repo.db.WithContext(ctx).Model(&model.PostModel{}), filter).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := model.PostModelFromEntity(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := model.PostModelFromEntity(post)

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":           postM.Title,
			"slug":            postM.Slug,
			"summary":         postM.Summary,
			"content":         postM.Content,
			"cover_image_url": postM.CoverImageURL,
			"published":       postM.Published,
			"published_at":    postM.PublishedAt,
			"series_id":       postM.SeriesID,
			"series_order":    postM.SeriesOrder,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post; the schema cascades to its reactions.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func applyPostFilter(tx *gorm.DB, filter repository.PostFilter) *gorm.DB {
	if filter.PublishedOnly {
		tx = tx.Where("published = ?", true)
	}
	if filter.SeriesID != nil {
		tx = tx.Where("series_id = ?", *filter.SeriesID)
	}

	return tx
}
