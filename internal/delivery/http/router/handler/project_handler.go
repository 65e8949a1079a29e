package handler

import (
	"net/http"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProjectHandler serves the public portfolio.
type ProjectHandler struct {
	projects usecase.ProjectUsecase
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(projects usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects returns all projects, featured first.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// GetProject returns one project by slug.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.projects.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}
