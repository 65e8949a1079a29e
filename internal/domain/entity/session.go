// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a long-lived, authorized login grant. It binds the
// current refresh token (stored as a SHA-256 hash) to a user and is revocable
// independently of the token's cryptographic expiry.
//
// Rotation mutates TokenHash and ExpiresAt on the same row; the prior token
// value becomes permanently unusable the instant it is replaced. Logout flips
// Valid to false and never deletes; only the purge operation removes rows.
type Session struct {
	ID        uuid.UUID // The unique ID for this specific session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the current refresh token.
	Valid     bool      // False once the session is revoked (logout, reuse detection, expiry during refresh).
	ExpiresAt time.Time // The exact time when this session's refresh token expires.
	UserAgent string    // Client metadata captured at login, for the sessions overview.
	IP        string    // Client metadata captured at login.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
	UpdatedAt time.Time // Timestamp of the last rotation or invalidation.
}

// Usable reports whether the session may still be rotated at the given time.
func (s *Session) Usable(now time.Time) bool {
	return s.Valid && s.ExpiresAt.After(now)
}

// SessionInfo is the client-facing view of a session for the
// "active devices" overview.
type SessionInfo struct {
	ID        uuid.UUID `json:"id"`
	UserAgent string    `json:"userAgent"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Current   bool      `json:"current"`
}
