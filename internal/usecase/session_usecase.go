package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// GetActiveSessions lists a user's usable sessions, newest first.
	// currentTokenHash marks which entry belongs to the calling client.
	GetActiveSessions(ctx context.Context, userID uuid.UUID, currentTokenHash string) ([]*entity.SessionInfo, error)

	// RevokeSession invalidates a single session owned by the user.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// RevokeAllSessions invalidates every session of the user ("log out all devices").
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error

	// CleanupSessions purges expired or invalidated session rows and
	// returns the number removed.
	CleanupSessions(ctx context.Context) (int64, error)
}
