package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostEvent is published when a post's visibility changes.
type PostEvent struct {
	Type       string    `json:"type"`
	PostID     uuid.UUID `json:"post_id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Event types carried by PostEvent.
const (
	PostPublished   = "post.published"
	PostUnpublished = "post.unpublished"
)

// EventPublisher publishes domain events to whatever transport the deployment
// wires in. Publish must be safe for concurrent use.
type EventPublisher interface {
	PublishPostEvent(ctx context.Context, event PostEvent) error
	Close() error
}
