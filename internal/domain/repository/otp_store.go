package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ErrOTPNotFound is returned when no live code exists for the email,
// either because it expired or because none was ever issued.
var ErrOTPNotFound = errors.New("otp not found")

// OTPActiveError is returned by Issue when a live code already exists for the
// email. Issuing never overwrites a live code; callers surface the remaining
// lifetime so the client can tell the user when to retry.
type OTPActiveError struct {
	Remaining time.Duration
}

func (e *OTPActiveError) Error() string {
	return fmt.Sprintf("an otp is already active for another %s", e.Remaining.Round(time.Second))
}

// OTPMismatchError is returned by Verify when a live code exists but the
// candidate does not match. The code stays live until its TTL lapses.
type OTPMismatchError struct {
	Remaining time.Duration
}

func (e *OTPMismatchError) Error() string {
	return fmt.Sprintf("otp mismatch, code expires in %s", e.Remaining.Round(time.Second))
}

// OTPStatus describes a live code without consuming it.
type OTPStatus struct {
	Exists    bool
	Remaining time.Duration
}

// OTPStore is the ephemeral key-value store holding one single-use numeric
// code per email, with the TTL enforced by the store itself rather than by
// application-level expiry checks.
type OTPStore interface {
	// Issue generates a fresh 4-digit code for the email and stores it with
	// the configured TTL in one atomic write. Returns *OTPActiveError when a
	// live code already exists.
	Issue(ctx context.Context, email string) (code string, err error)

	// Verify checks the candidate against the live code. On success the
	// entry is deleted (single use). Returns *OTPMismatchError on a wrong
	// code and ErrOTPNotFound when nothing is live.
	Verify(ctx context.Context, email, candidate string) error

	// Peek reports whether a live code exists and its remaining lifetime,
	// without consuming it.
	Peek(ctx context.Context, email string) (*OTPStatus, error)
}
