package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/config"
	"quill/internal/delivery/http/middleware"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
	"quill/internal/infra/auth"
	mockUsecase "quill/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionHandlerFixtures struct {
	handler  *SessionHandler
	sessions *mockUsecase.MockSessionUsecase
	tokenSvc service.TokenService
}

func createTestSessionHandler(t *testing.T) sessionHandlerFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		TempTTL:    10 * time.Minute,
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	sessions := mockUsecase.NewMockSessionUsecase(t)

	return sessionHandlerFixtures{
		handler:  NewSessionHandler(sessions, tokenSvc),
		sessions: sessions,
		tokenSvc: tokenSvc,
	}
}

func newSessionContext(method, target string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

func TestSessionHandler_ListSessions_MarksCurrent(t *testing.T) {
	f := createTestSessionHandler(t)
	userID := uuid.New()

	c, rec := newSessionContext(http.MethodGet, "/auth/sessions", userID)
	c.Request().AddCookie(&http.Cookie{Name: refreshCookieName, Value: "live-refresh"})

	currentHash := f.tokenSvc.HashToken("live-refresh")
	f.sessions.EXPECT().
		GetActiveSessions(mock.Anything, userID, currentHash).
		Return([]*entity.SessionInfo{
			{ID: uuid.New(), UserAgent: "firefox", Current: true},
			{ID: uuid.New(), UserAgent: "phone", Current: false},
		}, nil)

	err := f.handler.ListSessions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current":true`)
	assert.Contains(t, rec.Body.String(), "firefox")
}

func TestSessionHandler_ListSessions_NoCookie(t *testing.T) {
	f := createTestSessionHandler(t)
	userID := uuid.New()

	c, rec := newSessionContext(http.MethodGet, "/auth/sessions", userID)

	f.sessions.EXPECT().
		GetActiveSessions(mock.Anything, userID, "").
		Return([]*entity.SessionInfo{}, nil)

	err := f.handler.ListSessions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_ListSessions_Unauthenticated(t *testing.T) {
	f := createTestSessionHandler(t)

	c, rec := newSessionContext(http.MethodGet, "/auth/sessions", uuid.Nil)

	err := f.handler.ListSessions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_RevokeSession_Success(t *testing.T) {
	f := createTestSessionHandler(t)
	userID := uuid.New()
	sessionID := uuid.New()

	c, rec := newSessionContext(http.MethodDelete, "/auth/sessions/"+sessionID.String(), userID)
	c.SetPath("/auth/sessions/:id")
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())

	f.sessions.EXPECT().
		RevokeSession(mock.Anything, userID, sessionID).
		Return(nil)

	err := f.handler.RevokeSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_RevokeSession_InvalidID(t *testing.T) {
	f := createTestSessionHandler(t)

	c, rec := newSessionContext(http.MethodDelete, "/auth/sessions/nope", uuid.New())
	c.SetPath("/auth/sessions/:id")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := f.handler.RevokeSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_RevokeSession_NotOwned(t *testing.T) {
	f := createTestSessionHandler(t)
	userID := uuid.New()
	sessionID := uuid.New()

	c, _ := newSessionContext(http.MethodDelete, "/auth/sessions/"+sessionID.String(), userID)
	c.SetPath("/auth/sessions/:id")
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())

	f.sessions.EXPECT().
		RevokeSession(mock.Anything, userID, sessionID).
		Return(domainerrors.ErrSessionNotFound)

	err := f.handler.RevokeSession(c)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionHandler_RevokeAllSessions_Success(t *testing.T) {
	f := createTestSessionHandler(t)
	userID := uuid.New()

	c, rec := newSessionContext(http.MethodDelete, "/auth/sessions", userID)

	f.sessions.EXPECT().
		RevokeAllSessions(mock.Anything, userID).
		Return(nil)

	err := f.handler.RevokeAllSessions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
