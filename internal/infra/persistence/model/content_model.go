package model

import (
	"time"

	"github.com/google/uuid"

	"quill/internal/domain/entity"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Summary       string    `gorm:"type:text"`
	Content       string    `gorm:"type:text;not null"`
	CoverImageURL string    `gorm:"type:varchar(512)"`
	Published     bool      `gorm:"not null;default:false;index"`
	PublishedAt   *time.Time
	SeriesID      *uuid.UUID `gorm:"type:uuid;index"`
	SeriesOrder   int        `gorm:"not null;default:0"`
	AuthorID      uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Reactions []ReactionModel `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// ToEntity converts the persistence model to a domain entity.
func (m *PostModel) ToEntity() *entity.Post {
	return &entity.Post{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Summary:       m.Summary,
		Content:       m.Content,
		CoverImageURL: m.CoverImageURL,
		Published:     m.Published,
		PublishedAt:   m.PublishedAt,
		SeriesID:      m.SeriesID,
		SeriesOrder:   m.SeriesOrder,
		AuthorID:      m.AuthorID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PostModelFromEntity converts a domain entity to the persistence model.
func PostModelFromEntity(p *entity.Post) *PostModel {
	return &PostModel{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Summary:       p.Summary,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		SeriesID:      p.SeriesID,
		SeriesOrder:   p.SeriesOrder,
		AuthorID:      p.AuthorID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// SeriesModel mirrors the 'series' table.
type SeriesModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Description   string    `gorm:"type:text"`
	CoverImageURL string    `gorm:"type:varchar(512)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Posts []PostModel `gorm:"foreignKey:SeriesID"`
}

// TableName explicitly sets the table name for GORM.
func (SeriesModel) TableName() string {
	return "series"
}

// ToEntity converts the persistence model to a domain entity.
func (m *SeriesModel) ToEntity() *entity.Series {
	s := &entity.Series{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Description:   m.Description,
		CoverImageURL: m.CoverImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for i := range m.Posts {
		s.Posts = append(s.Posts, m.Posts[i].ToEntity())
	}

	return s
}

// SeriesModelFromEntity converts a domain entity to the persistence model.
func SeriesModelFromEntity(s *entity.Series) *SeriesModel {
	return &SeriesModel{
		ID:            s.ID,
		Title:         s.Title,
		Slug:          s.Slug,
		Description:   s.Description,
		CoverImageURL: s.CoverImageURL,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ProjectModel mirrors the 'projects' table. TechStack is stored as a JSONB array.
type ProjectModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Summary       string    `gorm:"type:text"`
	Description   string    `gorm:"type:text"`
	CoverImageURL string    `gorm:"type:varchar(512)"`
	RepoURL       string    `gorm:"type:varchar(512)"`
	DemoURL       string    `gorm:"type:varchar(512)"`
	TechStack     []string  `gorm:"type:jsonb;serializer:json"`
	Featured      bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Summary:       m.Summary,
		Description:   m.Description,
		CoverImageURL: m.CoverImageURL,
		RepoURL:       m.RepoURL,
		DemoURL:       m.DemoURL,
		TechStack:     m.TechStack,
		Featured:      m.Featured,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProjectModelFromEntity converts a domain entity to the persistence model.
func ProjectModelFromEntity(p *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Summary:       p.Summary,
		Description:   p.Description,
		CoverImageURL: p.CoverImageURL,
		RepoURL:       p.RepoURL,
		DemoURL:       p.DemoURL,
		TechStack:     p.TechStack,
		Featured:      p.Featured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ReactionModel mirrors the 'reactions' table. The composite unique index keeps
// one reaction per (post, user, kind).
type ReactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_post_user_kind"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_post_user_kind"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_reactions_post_user_kind"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReactionModel) TableName() string {
	return "reactions"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ReactionModel) ToEntity() *entity.Reaction {
	return &entity.Reaction{
		PostID:    m.PostID,
		UserID:    m.UserID,
		Kind:      entity.ReactionKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}
