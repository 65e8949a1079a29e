// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session, representing a fresh login.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := model.SessionModelFromEntity(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The token hash column is unique; a collision here means the
			// same token was issued twice, which the codec's random jti
			// rules out.
			return domainerrors.ErrTokenInvalid.WrapMessage("session already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindActiveByTokenHash retrieves the valid, unexpired session carrying the given hash.
func (repo *sessionRepository) FindActiveByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	return repo.findActiveByTokenHash(ctx, tokenHash, false)
}

// FindActiveByTokenHashForUpdate does the same lookup under a row lock so that
// concurrent refreshes of the same session serialize on the row.
func (repo *sessionRepository) FindActiveByTokenHashForUpdate(ctx context.Context, tokenHash string) (*entity.Session, error) {
	return repo.findActiveByTokenHash(ctx, tokenHash, true)
}

func (repo *sessionRepository) findActiveByTokenHash(ctx context.Context, tokenHash string, forUpdate bool) (*entity.Session, error) {
	var sessionM model.SessionModel

	tx := repo.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := tx.
		Where("token_hash = ? AND valid = ?", tokenHash, true).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return sessionM.ToEntity(), nil
}

// FindActiveByUserID retrieves all usable sessions for a user, newest first.
func (repo *sessionRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	var sessionModels []model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND valid = ? AND expires_at > ?", userID, true, time.Now()).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for i := range sessionModels {
		sessions = append(sessions, sessionModels[i].ToEntity())
	}

	return sessions, nil
}

// Rotate replaces the session's token hash and extends its expiry in place.
// The caller is expected to hold the row lock from FindActiveByTokenHashForUpdate.
func (repo *sessionRepository) Rotate(ctx context.Context, id uuid.UUID, newTokenHash string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND valid = ?", id, true).
		Updates(map[string]any{
			"token_hash": newTokenHash,
			"expires_at": expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Invalidate clears the validity flag on a single session.
func (repo *sessionRepository) Invalidate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Update("valid", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to invalidate session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// InvalidateByTokenHash clears the validity flag on whichever session carries
// the hash, whether or not it is still valid. Logout stays idempotent this way.
func (repo *sessionRepository) InvalidateByTokenHash(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ?", tokenHash).
		Update("valid", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate session by token hash")
	}

	return nil
}

// InvalidateByUserID clears the validity flag on all of a user's sessions.
func (repo *sessionRepository) InvalidateByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ?", userID).
		Update("valid", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate user sessions")
	}

	return nil
}

// PurgeExpiredOrInvalid deletes rows that are expired or invalidated and
// returns the number removed.
func (repo *sessionRepository) PurgeExpiredOrInvalid(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("valid = ? OR expires_at < ?", false, time.Now()).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}
