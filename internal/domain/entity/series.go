package entity

import (
	"time"

	"github.com/google/uuid"
)

// Series groups related posts into an ordered collection.
type Series struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Description   string
	CoverImageURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Posts are the published members of the series ordered by SeriesOrder.
	// Populated only on detail reads.
	Posts []*Post
}
