package handler

import (
	"log/slog"
	"net/http"
	"time"

	"quill/config"
	"quill/internal/delivery/http/response"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Both tokens travel in httpOnly cookies. The access cookie rides on every
// request so the auth middleware can fall back to it; the refresh cookie is
// scoped to /auth so it never leaves the auth surface.
const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// AuthHandler holds dependencies for registration, login and the OTP flow.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	otp      usecase.OTPUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, otp usecase.OTPUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		otp:      otp,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SendOTP mails a one-time verification code to the given address.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "A valid email address is required")
	}

	if err := h.otp.SendOTP(c.Request().Context(), &usecase.SendOTPInput{Email: req.Email}); err != nil {
		// A live code answers with the wait as a value, not just prose, so
		// the client can render a countdown.
		var activeErr *domainerrors.OTPActiveError
		if errors.As(err, &activeErr) {
			return response.ErrorWithData(c, activeErr.HTTPCode(), activeErr.ErrorCode(), activeErr.Message(),
				activeErr.Details(), map[string]int{"remainingTime": int(activeErr.Remaining.Seconds())})
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"expiresIn": int(h.cfg.OTP.TTL.Seconds()),
	}, "Verification code sent")
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=4"`
}

// VerifyOTP checks a candidate code and returns a registration token on match.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email and a 4-digit code are required")
	}

	output, err := h.otp.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{Email: req.Email, Code: req.OTP})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"tempToken": output.TempToken}, "Email verified")
}

// PeekOTP reports whether a live code exists for the email, without
// consuming an attempt.
func (h *AuthHandler) PeekOTP(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'email' is required")
	}

	output, err := h.otp.PeekOTP(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"exists":           output.Exists,
		"remainingSeconds": int(output.Remaining.Seconds()),
	}, "")
}

type registerRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	TempToken string `json:"tempToken" validate:"required"`
}

// Register completes account creation after OTP verification. A fresh account
// is logged in on the spot: the first session's cookies go out with the
// 201 response.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Name, email, a password of at least 8 characters and a verification token are required")
	}

	output, err := h.auth.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		TempToken: req.TempToken,
		UserAgent: c.Request().UserAgent(),
		IP:        c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)

	// Registration also hands the refresh token to the body so non-browser
	// clients can register without cookie support.
	return response.Success(c, http.StatusCreated, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"user":         output.User.Public(),
	}, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials, opens a session and hands out the token pair.
// The refresh token travels in an httpOnly cookie; the body carries the rest.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email and password are required")
	}

	output, err := h.auth.Login(c.Request().Context(), &usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
		IP:        c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"user":        output.User.Public(),
	}, "Login successful")
}

// Refresh rotates the session's refresh token and mints a new access token.
// The refresh token comes from the cookie; a JSON body is an API fallback.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		return response.Unauthorized(c, "MISSING_TOKEN", "Refresh token is missing")
	}

	output, err := h.auth.Refresh(c.Request().Context(), &usecase.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		h.clearAuthCookies(c)

		return errors.WithStack(err)
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"user":        output.User.Public(),
	}, "Token refreshed successfully")
}

// Logout invalidates the current session and drops both cookies. Logging out
// with no session, or with a dead one, still answers 200.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := h.refreshTokenFromRequest(c)

	if err := h.auth.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: refreshToken}); err != nil {
		return errors.WithStack(err)
	}

	h.clearAuthCookies(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Init resolves the returning client into a user payload at app bootstrap.
// It keys off the refresh cookie, not the access token, so a client whose
// short-lived access token already lapsed still bootstraps.
func (h *AuthHandler) Init(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "MISSING_TOKEN", "No session cookie present")
	}

	output, err := h.auth.Init(c.Request().Context(), &usecase.InitInput{RefreshToken: cookie.Value})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":            output.User.Public(),
		"isAuthenticated": true,
	}, "")
}

func (h *AuthHandler) refreshTokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&body); err == nil {
		return body.RefreshToken
	}

	return ""
}

func (h *AuthHandler) setAuthCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     accessCookieName,
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenSvc.AccessTokenDuration()),
		HttpOnly: true,
		Secure:   !h.cfg.Env.Debug,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/auth",
		Expires:  time.Now().Add(h.tokenSvc.RefreshTokenDuration()),
		HttpOnly: true,
		Secure:   !h.cfg.Env.Debug,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookies(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     accessCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.cfg.Env.Debug,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.cfg.Env.Debug,
		SameSite: http.SameSiteLaxMode,
	})
}
