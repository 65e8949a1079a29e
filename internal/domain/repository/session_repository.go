// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no valid session matches the lookup.
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository defines the operations on persisted login grants.
// A session row holds the hash of the current refresh token, a validity flag
// and an expiry; rotation mutates the row in place, logout only flips the
// flag, and physical deletion happens exclusively through the purge.
type SessionRepository interface {
	// Create persists a new session, representing a fresh login.
	Create(ctx context.Context, session *entity.Session) error

	// FindActiveByTokenHash retrieves the session currently carrying the
	// given refresh-token hash with its validity flag still set. Rows whose
	// flag has been cleared are treated as not found.
	FindActiveByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindActiveByTokenHashForUpdate behaves like FindActiveByTokenHash but
	// locks the row for the remainder of the surrounding transaction. The
	// rotation path uses this so that two concurrent refresh attempts with
	// the same token are serialized: the loser re-reads an already rotated
	// hash and gets ErrSessionNotFound.
	FindActiveByTokenHashForUpdate(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindActiveByUserID retrieves all usable sessions for a user, newest first.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Rotate replaces the session's token hash and extends its expiry on the
	// same row. The prior hash is thereafter rejected by the active lookups.
	Rotate(ctx context.Context, id uuid.UUID, newTokenHash string, expiresAt time.Time) error

	// Invalidate clears the validity flag on a single session.
	Invalidate(ctx context.Context, id uuid.UUID) error

	// InvalidateByTokenHash clears the validity flag on whichever session
	// still carries the given hash, valid or not. Used by logout and by the
	// token-reuse defense during refresh.
	InvalidateByTokenHash(ctx context.Context, tokenHash string) error

	// InvalidateByUserID clears the validity flag on all of a user's
	// sessions ("log out all devices").
	InvalidateByUserID(ctx context.Context, userID uuid.UUID) error

	// PurgeExpiredOrInvalid deletes rows that are expired or invalidated and
	// returns the number removed. Idempotent; safe to run repeatedly.
	PurgeExpiredOrInvalid(ctx context.Context) (int64, error)
}
