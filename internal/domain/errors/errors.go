package errors

import (
	"fmt"
	"net/http"
	"time"

	"quill/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"this email address is already registered",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"no active session for this token",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"session has expired, please log in again",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"you do not have permission to perform this action",
		"",
	)

	// OTP-related errors
	ErrOTPActive = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_ALREADY_ACTIVE",
		"a verification code was already sent, wait for it to expire",
		"",
	)

	ErrOTPNotFound = NewBaseError(
		http.StatusBadRequest,
		"OTP_NOT_FOUND",
		"verification code expired or was never issued",
		"",
	)

	ErrOTPMismatch = NewBaseError(
		http.StatusBadRequest,
		"OTP_MISMATCH",
		"verification code does not match",
		"",
	)

	// Content-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"post not found",
		"",
	)

	ErrSeriesNotFound = NewBaseError(
		http.StatusNotFound,
		"SERIES_NOT_FOUND",
		"series not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"project not found",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"a record with this slug already exists",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// OTPActiveError reports that a live code blocks reissue. Beyond the detail
// text it exposes the remaining wait as a value, so the route boundary can
// answer with a machine-readable countdown.
type OTPActiveError struct {
	*BaseError
	Remaining time.Duration
}

// Unwrap lets errors.Is match the ErrOTPActive sentinel.
func (e *OTPActiveError) Unwrap() error {
	return ErrOTPActive
}

// NewOTPActiveError constructs an OTPActiveError. A negative remaining wait
// means the blocking code expired mid-request; it is clamped to zero rather
// than surfacing a nonsense countdown.
func NewOTPActiveError(remaining time.Duration) error {
	if remaining < 0 {
		remaining = 0
	}

	return &OTPActiveError{
		BaseError: ErrOTPActive.WithDetails(fmt.Sprintf("retry in %s", remaining.Round(time.Second))),
		Remaining: remaining,
	}
}

// NewOTPMismatchError reports a wrong candidate; the live code keeps its TTL.
func NewOTPMismatchError(remaining time.Duration) error {
	return ErrOTPMismatch.WithDetails(fmt.Sprintf("code expires in %s", remaining.Round(time.Second)))
}

// NewDatabaseExecuteError wraps an infrastructure-level database failure as a
// generic 500 AppError while preserving the cause for logging.
func NewDatabaseExecuteError(cause error, message string) error {
	return errors.Wrap(ErrInternalError.WithDetails(cause.Error()), message)
}
