package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReactionKind distinguishes the per-user marks recorded against a post.
type ReactionKind string

const (
	// ReactionLike is a user's like on a post. Toggling removes it again.
	ReactionLike ReactionKind = "like"
	// ReactionView records that a user has viewed a post. Recorded at most
	// once per (post, user); never removed.
	ReactionView ReactionKind = "view"
)

// Reaction is one row of the (post, user, kind) join table. A uniqueness
// constraint over all three columns makes like-toggling an insert-or-delete
// and view-recording an insert-on-conflict-do-nothing, so membership never
// requires scanning an ID array.
type Reaction struct {
	PostID    uuid.UUID
	UserID    uuid.UUID
	Kind      ReactionKind
	CreatedAt time.Time
}
