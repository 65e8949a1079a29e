package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown on the projects page.
type Project struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Summary       string
	Description   string
	CoverImageURL string
	RepoURL       string
	DemoURL       string
	TechStack     []string // Rendered as badges; stored as a JSON column.
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
