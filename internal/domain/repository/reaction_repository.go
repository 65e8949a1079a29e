package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ReactionRepository operates on the (post, user, kind) join table backing
// likes and views. The table carries a uniqueness constraint over all three
// columns, so membership checks and de-duplication are the database's job.
type ReactionRepository interface {
	// ToggleLike inserts a like row for (postID, userID) or deletes it if it
	// already exists. Returns whether the post is liked after the call.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (liked bool, err error)

	// RecordView inserts a view row for (postID, userID); a repeat view is a
	// no-op thanks to the uniqueness constraint.
	RecordView(ctx context.Context, postID, userID uuid.UUID) error

	// CountByPost returns the number of reactions of one kind on a post.
	CountByPost(ctx context.Context, postID uuid.UUID, kind entity.ReactionKind) (int64, error)

	// HasReaction reports whether (postID, userID, kind) exists.
	HasReaction(ctx context.Context, postID, userID uuid.UUID, kind entity.ReactionKind) (bool, error)
}
