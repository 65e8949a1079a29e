package handler

import (
	"net/http"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SeriesHandler serves the public series catalogue.
type SeriesHandler struct {
	series usecase.SeriesUsecase
}

// NewSeriesHandler is the constructor for SeriesHandler, injected by Fx.
func NewSeriesHandler(series usecase.SeriesUsecase) *SeriesHandler {
	return &SeriesHandler{series: series}
}

// ListSeries returns all series, newest first.
func (h *SeriesHandler) ListSeries(c echo.Context) error {
	series, err := h.series.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "")
}

// GetSeries returns one series with its published posts in curated order.
func (h *SeriesHandler) GetSeries(c echo.Context) error {
	series, err := h.series.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "")
}
