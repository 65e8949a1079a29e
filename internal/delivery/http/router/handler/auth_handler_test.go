package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quill/config"
	"quill/internal/delivery/http/validator"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
	"quill/internal/infra/auth"
	mockUsecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler  *AuthHandler
	auth     *mockUsecase.MockAuthUsecase
	otp      *mockUsecase.MockOTPUsecase
	tokenSvc service.TokenService
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.OTP = &config.OTPConfig{TTL: 5 * time.Minute}
	cfg.JWT = config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		TempTTL:    10 * time.Minute,
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := mockUsecase.NewMockAuthUsecase(t)
	otpUC := mockUsecase.NewMockOTPUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authHandlerFixtures{
		handler:  NewAuthHandler(authUC, otpUC, tokenSvc, cfg, logger),
		auth:     authUC,
		otp:      otpUC,
		tokenSvc: tokenSvc,
	}
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_SendOTP_Success(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/send-otp", `{"email":"new@example.com"}`)

	f.otp.EXPECT().
		SendOTP(mock.Anything, &usecase.SendOTPInput{Email: "new@example.com"}).
		Return(nil)

	err := f.handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expiresIn":300`)
}

func TestAuthHandler_SendOTP_AlreadyActive(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/send-otp", `{"email":"new@example.com"}`)

	f.otp.EXPECT().
		SendOTP(mock.Anything, &usecase.SendOTPInput{Email: "new@example.com"}).
		Return(domainerrors.NewOTPActiveError(3 * time.Minute))

	err := f.handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"remainingTime":180`)
	assert.Contains(t, rec.Body.String(), "OTP_ALREADY_ACTIVE")
}

func TestAuthHandler_SendOTP_InvalidEmail(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/send-otp", `{"email":"not-an-email"}`)

	err := f.handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_VerifyOTP_Success(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/verify-otp", `{"email":"new@example.com","otp":"1234"}`)

	f.otp.EXPECT().
		VerifyOTP(mock.Anything, &usecase.VerifyOTPInput{Email: "new@example.com", Code: "1234"}).
		Return(&usecase.VerifyOTPOutput{TempToken: "temp-token"}, nil)

	err := f.handler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "temp-token")
}

func TestAuthHandler_VerifyOTP_WrongCodeLength(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/verify-otp", `{"email":"new@example.com","otp":"12"}`)

	err := f.handler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_PeekOTP_MissingEmail(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodGet, "/auth/peek-otp", "")

	err := f.handler.PeekOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"New User","email":"new@example.com","password":"password123","tempToken":"temp-token"}`)

	user := &entity.User{ID: uuid.New(), Email: "new@example.com", Name: "New User", Role: entity.RoleUser}
	f.auth.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(_ context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "New User", input.Name)
			assert.Equal(t, "new@example.com", input.Email)
			assert.Equal(t, "password123", input.Password)
			assert.Equal(t, "temp-token", input.TempToken)
		}).
		Return(&usecase.RegisterOutput{
			User:         user,
			AccessToken:  "first-access",
			RefreshToken: "first-refresh",
		}, nil)

	err := f.handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "new@example.com")
	assert.Contains(t, rec.Body.String(), "first-access")
	assert.Contains(t, rec.Body.String(), "first-refresh")
	assert.NotContains(t, rec.Body.String(), "PasswordHash")

	accessCookie := findCookie(rec, accessCookieName)
	require.NotNil(t, accessCookie)
	assert.Equal(t, "first-access", accessCookie.Value)
	refreshCookie := findCookie(rec, refreshCookieName)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "first-refresh", refreshCookie.Value)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"New User","email":"new@example.com","password":"short","tempToken":"temp-token"}`)

	err := f.handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_SetsAuthCookies(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"owner@example.com","password":"password123"}`)

	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleAdmin}
	f.auth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         user,
		}, nil)

	err := f.handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.NotContains(t, rec.Body.String(), "refresh-token")

	accessCookie := findCookie(rec, accessCookieName)
	require.NotNil(t, accessCookie)
	assert.Equal(t, "access-token", accessCookie.Value)
	assert.True(t, accessCookie.HttpOnly)
	assert.Equal(t, "/", accessCookie.Path)

	refreshCookie := findCookie(rec, refreshCookieName)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "refresh-token", refreshCookie.Value)
	assert.True(t, refreshCookie.HttpOnly)
	assert.Equal(t, "/auth", refreshCookie.Path)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := createTestAuthHandler(t)
	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"owner@example.com","password":"wrong-pass"}`)

	f.auth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	err := f.handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Refresh_WithCookie(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "old-refresh"})

	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleAdmin}
	f.auth.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "old-refresh"}).
		Return(&usecase.RefreshOutput{AccessToken: "new-access", RefreshToken: "new-refresh", User: user}, nil)

	err := f.handler.Refresh(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
	assert.Contains(t, rec.Body.String(), "owner@example.com")

	accessCookie := findCookie(rec, accessCookieName)
	require.NotNil(t, accessCookie)
	assert.Equal(t, "new-access", accessCookie.Value)
	refreshCookie := findCookie(rec, refreshCookieName)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "new-refresh", refreshCookie.Value)
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")

	err := f.handler.Refresh(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh_BurnedSessionClearsCookie(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "reused-refresh"})

	f.auth.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "reused-refresh"}).
		Return(nil, domainerrors.ErrSessionNotFound)

	err := f.handler.Refresh(c)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	cookie := findCookie(rec, refreshCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "live-refresh"})

	f.auth.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "live-refresh"}).
		Return(nil)

	err := f.handler.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, name := range []string{accessCookieName, refreshCookieName} {
		cookie := findCookie(rec, name)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestAuthHandler_Init_Success(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodGet, "/auth/init", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "live-refresh"})

	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleAdmin}
	f.auth.EXPECT().
		Init(mock.Anything, &usecase.InitInput{RefreshToken: "live-refresh"}).
		Return(&usecase.InitOutput{User: user}, nil)

	err := f.handler.Init(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "owner@example.com")
	assert.Contains(t, rec.Body.String(), `"isAuthenticated":true`)
}

func TestAuthHandler_Init_MissingCookie(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := newJSONContext(http.MethodGet, "/auth/init", "")

	err := f.handler.Init(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Init_DeadSession(t *testing.T) {
	f := createTestAuthHandler(t)
	c, _ := newJSONContext(http.MethodGet, "/auth/init", "")
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "stale-refresh"})

	f.auth.EXPECT().
		Init(mock.Anything, &usecase.InitInput{RefreshToken: "stale-refresh"}).
		Return(nil, domainerrors.ErrSessionNotFound)

	err := f.handler.Init(c)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
