package service

import (
	"time"

	"quill/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by every issued token.
// Access and refresh tokens share this exact shape; the token's kind is not a
// claim, so callers must track which is which by where they stored it.
// Purpose is set only on temp tokens minted after OTP verification.
type Claims struct {
	UserID  uuid.UUID   `json:"uid,omitempty"`
	Email   string      `json:"email,omitempty"`
	Role    entity.Role `json:"role,omitempty"`
	Purpose string      `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair creates a new access token and refresh token for a given user.
	GenerateTokenPair(user *entity.User) (accessToken string, refreshToken string, err error)

	// GenerateTempToken creates a short-lived, purpose-tagged token, used to
	// carry a verified email between OTP verification and registration.
	GenerateTempToken(email string, purpose string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims. Pure: no I/O, no revocation lookup.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the SHA-256 hex digest used to store refresh tokens
	// at rest.
	HashToken(token string) string

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
