package model

import (
	"time"

	"github.com/google/uuid"

	"quill/internal/domain/entity"
)

// SessionModel mirrors the 'sessions' table. Each row holds the SHA-256 hash of
// an issued refresh token; the raw token never touches the database.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	Valid     bool      `gorm:"not null;default:true"`
	ExpiresAt time.Time `gorm:"not null;index"`
	UserAgent string    `gorm:"type:varchar(255)"`
	IP        string    `gorm:"type:varchar(45)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the persistence model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		Valid:     m.Valid,
		ExpiresAt: m.ExpiresAt,
		UserAgent: m.UserAgent,
		IP:        m.IP,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SessionModelFromEntity converts a domain entity to the persistence model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		TokenHash: s.TokenHash,
		Valid:     s.Valid,
		ExpiresAt: s.ExpiresAt,
		UserAgent: s.UserAgent,
		IP:        s.IP,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
