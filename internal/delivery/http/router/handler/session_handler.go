package handler

import (
	"net/http"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes the "active devices" overview and revocation.
type SessionHandler struct {
	sessions usecase.SessionUsecase
	tokenSvc service.TokenService
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessions usecase.SessionUsecase, tokenSvc service.TokenService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		tokenSvc: tokenSvc,
	}
}

// ListSessions returns the caller's usable sessions, newest first. The entry
// matching the caller's refresh cookie is flagged as current.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var currentHash string
	if cookie, cerr := c.Cookie(refreshCookieName); cerr == nil && cookie.Value != "" {
		currentHash = h.tokenSvc.HashToken(cookie.Value)
	}

	infos, err := h.sessions.GetActiveSessions(c.Request().Context(), userID, currentHash)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, infos, "")
}

// RevokeSession invalidates one of the caller's sessions by ID.
func (h *SessionHandler) RevokeSession(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	if err := h.sessions.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked")
}

// RevokeAllSessions logs the caller out of every device.
func (h *SessionHandler) RevokeAllSessions(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	if err := h.sessions.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All sessions revoked")
}

// authenticatedUserID reads the user ID stored by the Authenticate middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, errors.New("user identity missing from context")
	}

	return userID, nil
}
