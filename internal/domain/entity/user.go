// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single registered
// account. The password hash lives here because email/password is the only
// credential the platform supports.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email, also the login identifier. Verified via OTP before registration completes.
	Name         string    // The user's display name.
	PasswordHash string    // Stores the bcrypt-hashed password. Never serialized to clients.
	Role         Role      // The user's role; authorization decisions consume this claim.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// PublicUser is the client-safe projection of a User.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
