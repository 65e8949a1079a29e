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
	"gorm.io/gorm/clause"
)

// reactionRepository implements the repository.ReactionRepository interface.
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository is the constructor for reactionRepository.
func NewReactionRepository(db *gorm.DB) repository.ReactionRepository {
	return &reactionRepository{db: db}
}

// ToggleLike inserts a like row for (postID, userID) or removes it if present.
// Returns whether the post is liked after the call.
func (repo *reactionRepository) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, string(entity.ReactionLike)).
		Delete(&model.ReactionModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to toggle like")
	}

	// A row was deleted, so the user had already liked the post.
	if result.RowsAffected > 0 {
		return false, nil
	}

	reaction := model.ReactionModel{
		PostID: postID,
		UserID: userID,
		Kind:   string(entity.ReactionLike),
	}
	if err := repo.db.WithContext(ctx).Create(&reaction).Error; err != nil {
		// A concurrent toggle may have inserted the row between our delete
		// and create; the unique index turns that into a duplicate error.
		if isUniqueConstraintViolation(err) {
			return true, nil
		}
		if isForeignKeyConstraintViolation(err) {
			return false, repository.ErrPostNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to toggle like")
	}

	return true, nil
}

// RecordView inserts a view row for (postID, userID). Repeat views are
// absorbed by the unique index via ON CONFLICT DO NOTHING.
func (repo *reactionRepository) RecordView(ctx context.Context, postID, userID uuid.UUID) error {
	reaction := model.ReactionModel{
		PostID: postID,
		UserID: userID,
		Kind:   string(entity.ReactionView),
	}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&reaction).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record view")
	}

	return nil
}

// CountByPost returns the number of reactions of one kind on a post.
func (repo *reactionRepository) CountByPost(ctx context.Context, postID uuid.UUID, kind entity.ReactionKind) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReactionModel{}).
		Where("post_id = ? AND kind = ?", postID, string(kind)).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// HasReaction reports whether (postID, userID, kind) exists.
func (repo *reactionRepository) HasReaction(ctx context.Context, postID, userID uuid.UUID, kind entity.ReactionKind) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReactionModel{}).
		Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, string(kind)).
		Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}
