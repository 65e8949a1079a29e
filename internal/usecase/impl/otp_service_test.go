package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otpServiceFixtures struct {
	service      usecase.OTPUsecase
	otpStore     *mockRepo.MockOTPStore
	mailer       *mockSvc.MockMailer
	tokenService *mockSvc.MockTokenService
}

func createTestOTPService(t *testing.T) otpServiceFixtures {
	otpStore := mockRepo.NewMockOTPStore(t)
	mailer := mockSvc.NewMockMailer(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewOTPService(otpStore, mailer, tokenService, newDiscardLogger())

	return otpServiceFixtures{
		service:      svc,
		otpStore:     otpStore,
		mailer:       mailer,
		tokenService: tokenService,
	}
}

func TestOTPService_SendOTP_Success(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().Issue(ctx, email).Return("1234", nil)
	fx.mailer.EXPECT().
		Send(ctx, email, "Your verification code", "Your verification code is 1234. It expires in a few minutes.").
		Return(nil)

	err := fx.service.SendOTP(ctx, &usecase.SendOTPInput{Email: email})

	assert.NoError(t, err)
}

func TestOTPService_SendOTP_AlreadyActive(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().
		Issue(ctx, email).
		Return("", &repository.OTPActiveError{Remaining: 3 * time.Minute})

	err := fx.service.SendOTP(ctx, &usecase.SendOTPInput{Email: email})

	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOTPActive)

	var activeErr *domainerrors.OTPActiveError
	require.True(t, errors.As(err, &activeErr))
	assert.Equal(t, "OTP_ALREADY_ACTIVE", activeErr.ErrorCode())
	assert.Equal(t, 3*time.Minute, activeErr.Remaining)
	assert.Contains(t, activeErr.Details(), "3m0s")
}

func TestOTPService_SendOTP_ExpiredWaitClampsToZero(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	// The store can report a negative wait when the blocking code expires
	// mid-request; the countdown must never go below zero.
	fx.otpStore.EXPECT().
		Issue(ctx, email).
		Return("", &repository.OTPActiveError{Remaining: -2 * time.Nanosecond})

	err := fx.service.SendOTP(ctx, &usecase.SendOTPInput{Email: email})

	var activeErr *domainerrors.OTPActiveError
	require.True(t, errors.As(err, &activeErr))
	assert.Equal(t, time.Duration(0), activeErr.Remaining)
	assert.Contains(t, activeErr.Details(), "retry in 0s")
}

func TestOTPService_SendOTP_MailerFailure(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().Issue(ctx, email).Return("1234", nil)
	fx.mailer.EXPECT().
		Send(ctx, email, "Your verification code", "Your verification code is 1234. It expires in a few minutes.").
		Return(errors.New("smtp connection refused"))

	err := fx.service.SendOTP(ctx, &usecase.SendOTPInput{Email: email})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send otp mail")
}

func TestOTPService_VerifyOTP_Success(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().Verify(ctx, email, "1234").Return(nil)
	fx.tokenService.EXPECT().
		GenerateTempToken(email, TempTokenPurposeRegistration).
		Return("temp-token", nil)

	output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: email, Code: "1234"})

	require.NoError(t, err)
	assert.Equal(t, "temp-token", output.TempToken)
}

func TestOTPService_VerifyOTP_Mismatch(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().
		Verify(ctx, email, "9999").
		Return(&repository.OTPMismatchError{Remaining: 2 * time.Minute})

	output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: email, Code: "9999"})

	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "OTP_MISMATCH", appErr.ErrorCode())
}

func TestOTPService_VerifyOTP_NotFound(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().Verify(ctx, email, "1234").Return(repository.ErrOTPNotFound)

	output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: email, Code: "1234"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOTPNotFound)
}

func TestOTPService_VerifyOTP_MalformedCode(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()

	for _, code := range []string{"", "12", "12345", "12a4", "abcd"} {
		output, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: "test@example.com", Code: code})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrOTPMismatch, "code %q", code)
	}
}

func TestOTPService_PeekOTP(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().
		Peek(ctx, email).
		Return(&repository.OTPStatus{Exists: true, Remaining: 90 * time.Second}, nil)

	output, err := fx.service.PeekOTP(ctx, email)

	require.NoError(t, err)
	assert.True(t, output.Exists)
	assert.Equal(t, 90*time.Second, output.Remaining)
}

func TestOTPService_PeekOTP_NoCode(t *testing.T) {
	fx := createTestOTPService(t)

	ctx := context.Background()
	email := "test@example.com"

	fx.otpStore.EXPECT().
		Peek(ctx, email).
		Return(&repository.OTPStatus{Exists: false}, nil)

	output, err := fx.service.PeekOTP(ctx, email)

	require.NoError(t, err)
	assert.False(t, output.Exists)
	assert.Zero(t, output.Remaining)
}
