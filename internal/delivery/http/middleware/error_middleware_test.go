package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	err := errors.Wrap(domainerrors.ErrPostNotFound, "lookup failed")
	mw.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POST_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(errors.New("database exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "database exploded")
}
