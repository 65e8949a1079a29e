package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a single blog article. Posts are addressed publicly by slug and
// may belong to at most one series.
type Post struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Summary       string
	Content       string // Markdown body, rendered client-side.
	CoverImageURL string
	Published     bool
	PublishedAt   *time.Time
	SeriesID      *uuid.UUID // Optional series membership.
	SeriesOrder   int        // Position within the series, 0 when standalone.
	AuthorID      uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Aggregates resolved from the reactions table, not stored on the row.
	LikeCount int64
	ViewCount int64
	// Liked reports whether the requesting user has liked this post.
	// Only meaningful on authenticated reads.
	Liked bool
}

// Visible reports whether the post may be served on public routes.
func (p *Post) Visible() bool {
	return p.Published
}
