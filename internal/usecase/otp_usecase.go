package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// SendOTPInput identifies the email a verification code should be mailed to.
type SendOTPInput struct {
	Email string
}

// VerifyOTPInput carries a candidate code for an email.
type VerifyOTPInput struct {
	Email string
	Code  string
}

// --- Output DTOs ---

// VerifyOTPOutput returns the registration token minted on a successful match.
type VerifyOTPOutput struct {
	TempToken string
}

// PeekOTPOutput describes whether a live code exists for the email.
type PeekOTPOutput struct {
	Exists    bool
	Remaining time.Duration
}

// OTPUsecase defines the interface for the email verification flow that
// gates registration.
type OTPUsecase interface {
	SendOTP(ctx context.Context, input *SendOTPInput) error
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*VerifyOTPOutput, error)
	PeekOTP(ctx context.Context, email string) (*PeekOTPOutput, error)
}
