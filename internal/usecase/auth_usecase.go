// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// TempToken must be a live registration token minted by OTP verification
// for the same email.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	TempToken string
	UserAgent string
	IP        string
}

// LoginInput defines the data required for a user to log in.
// UserAgent and IP are captured for the active-sessions overview.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IP        string
}

// RefreshInput carries the refresh token presented by the client cookie.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token to be invalidated.
type LogoutInput struct {
	RefreshToken string
}

// InitInput carries the refresh token cookie presented by a returning client.
type InitInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the created user and the opening session's tokens;
// registration logs the user straight in.
type RegisterOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the rotated token pair and the session's user, whose
// claims the new tokens carry.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// InitOutput returns the authenticated user for app bootstrap.
type InitOutput struct {
	User *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	Init(ctx context.Context, input *InitInput) (*InitOutput, error)
}
