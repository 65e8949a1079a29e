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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetActiveSessions lists a user's usable sessions, newest first, marking the
// one that matches the caller's own refresh token.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID, currentTokenHash string) ([]*entity.SessionInfo, error) {
	var infos []*entity.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := repoFactory.SessionRepo().FindActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}

		infos = make([]*entity.SessionInfo, 0, len(sessions))
		for _, s := range sessions {
			infos = append(infos, &entity.SessionInfo{
				ID:        s.ID,
				UserAgent: s.UserAgent,
				IP:        s.IP,
				CreatedAt: s.CreatedAt,
				ExpiresAt: s.ExpiresAt,
				Current:   s.TokenHash == currentTokenHash,
			})
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list active sessions", "error", err, "userID", userID)

		return nil, err
	}

	return infos, nil
}

// RevokeSession invalidates a single session, refusing to touch rows that
// belong to someone else.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		sessions, err := sessionRepo.FindActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}

		for _, s := range sessions {
			if s.ID == sessionID {
				return sessionRepo.Invalidate(ctx, sessionID)
			}
		}

		return domainerrors.ErrSessionNotFound.WrapMessage("session does not belong to user")
	})
	if err != nil {
		srv.logger.Warn("Failed to revoke session", "error", err, "sessionID", sessionID)

		return err
	}
	srv.logger.Info("Session revoked", "sessionID", sessionID, "userID", userID)

	return nil
}

// RevokeAllSessions invalidates every session of the user.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SessionRepo().InvalidateByUserID(ctx, userID)
	})
	if err != nil {
		srv.logger.Error("Failed to revoke all sessions", "error", err, "userID", userID)

		return errors.Wrap(err, "failed to revoke all sessions")
	}
	srv.logger.Info("All sessions revoked", "userID", userID)

	return nil
}

// CleanupSessions purges expired or invalidated rows and reports how many went.
func (srv *sessionService) CleanupSessions(ctx context.Context) (int64, error) {
	var deleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.SessionRepo().PurgeExpiredOrInvalid(ctx)

		return errors.Wrap(err, "failed to purge sessions")
	})
	if err != nil {
		srv.logger.Error("Failed to clean up sessions", "error", err)

		return 0, err
	}
	srv.logger.Info("Sessions cleaned up", "deletedCount", deleted)

	return deleted, nil
}
