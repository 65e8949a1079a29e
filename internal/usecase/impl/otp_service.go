package impl

import (
	"context"
	"fmt"
	"log/slog"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
)

// otpService implements the OTPUsecase interface.
type otpService struct {
	otpStore     repository.OTPStore
	mailer       service.Mailer
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(
	otpStore repository.OTPStore,
	mailer service.Mailer,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.OTPUsecase {
	return &otpService{
		otpStore:     otpStore,
		mailer:       mailer,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SendOTP issues a fresh code for the email and mails it.
// A live code blocks reissue until it expires; the active error carries the
// remaining wait so the client can show a countdown.
func (srv *otpService) SendOTP(ctx context.Context, input *usecase.SendOTPInput) error {
	srv.logger.Info("Issuing OTP", "email", input.Email)

	code, err := srv.otpStore.Issue(ctx, input.Email)
	if err != nil {
		var activeErr *repository.OTPActiveError
		if errors.As(err, &activeErr) {
			return domainerrors.NewOTPActiveError(activeErr.Remaining)
		}

		return errors.Wrap(err, "failed to issue otp")
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in a few minutes.", code)
	if err := srv.mailer.Send(ctx, input.Email, "Your verification code", body); err != nil {
		srv.logger.Error("Failed to mail OTP", "error", err, "email", input.Email)

		return errors.Wrap(err, "failed to send otp mail")
	}

	return nil
}

// VerifyOTP checks the candidate and mints a registration token on success.
// The code is consumed on a match; a mismatch leaves it live until its TTL.
func (srv *otpService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	// Reject malformed candidates before touching the store so garbage input
	// cannot trip the consume-on-match path.
	if !isFourDigits(input.Code) {
		return nil, domainerrors.ErrOTPMismatch.WrapMessage("code must be 4 digits")
	}

	if err := srv.otpStore.Verify(ctx, input.Email, input.Code); err != nil {
		var mismatchErr *repository.OTPMismatchError
		switch {
		case errors.As(err, &mismatchErr):
			return nil, domainerrors.NewOTPMismatchError(mismatchErr.Remaining)
		case errors.Is(err, repository.ErrOTPNotFound):
			return nil, domainerrors.ErrOTPNotFound.WrapMessage("no active code for this email")
		default:
			return nil, errors.Wrap(err, "failed to verify otp")
		}
	}

	tempToken, err := srv.tokenService.GenerateTempToken(input.Email, TempTokenPurposeRegistration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate registration token")
	}

	srv.logger.Info("OTP verified", "email", input.Email)

	return &usecase.VerifyOTPOutput{TempToken: tempToken}, nil
}

// PeekOTP reports whether a live code exists without consuming it.
func (srv *otpService) PeekOTP(ctx context.Context, email string) (*usecase.PeekOTPOutput, error) {
	status, err := srv.otpStore.Peek(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to peek otp")
	}

	return &usecase.PeekOTPOutput{
		Exists:    status.Exists,
		Remaining: status.Remaining,
	}, nil
}

func isFourDigits(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
