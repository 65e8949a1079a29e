package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler owns the site owner's content management surface.
type AdminHandler struct {
	posts    usecase.PostUsecase
	series   usecase.SeriesUsecase
	projects usecase.ProjectUsecase
	sessions usecase.SessionUsecase
	media    service.MediaStorage
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	posts usecase.PostUsecase,
	series usecase.SeriesUsecase,
	projects usecase.ProjectUsecase,
	sessions usecase.SessionUsecase,
	media service.MediaStorage,
) *AdminHandler {
	return &AdminHandler{
		posts:    posts,
		series:   series,
		projects: projects,
		sessions: sessions,
		media:    media,
	}
}

type postRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Slug          string `json:"slug" validate:"required,max=200"`
	Summary       string `json:"summary"`
	Content       string `json:"content" validate:"required"`
	CoverImageURL string `json:"coverImageUrl"`
	SeriesID      string `json:"seriesId"`
	SeriesOrder   int    `json:"seriesOrder"`
}

func (r *postRequest) seriesID() (*uuid.UUID, error) {
	if r.SeriesID == "" {
		return nil, nil
	}

	id, err := uuid.Parse(r.SeriesID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid series ID")
	}

	return &id, nil
}

// CreatePost persists a new draft post authored by the caller.
func (h *AdminHandler) CreatePost(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title, slug and content are required")
	}

	seriesID, err := req.seriesID()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid series ID")
	}

	authorID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	post, err := h.posts.Create(c.Request().Context(), &usecase.CreatePostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		SeriesID:      seriesID,
		SeriesOrder:   req.SeriesOrder,
		AuthorID:      authorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created")
}

// UpdatePost modifies an existing post.
func (h *AdminHandler) UpdatePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title, slug and content are required")
	}

	seriesID, err := req.seriesID()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid series ID")
	}

	post, err := h.posts.Update(c.Request().Context(), &usecase.UpdatePostInput{
		ID:            id,
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		SeriesID:      seriesID,
		SeriesOrder:   req.SeriesOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated")
}

// DeletePost removes a post and its reactions.
func (h *AdminHandler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.posts.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted")
}

type setPublishedRequest struct {
	Published bool `json:"published"`
}

// SetPublished flips a post's published state.
func (h *AdminHandler) SetPublished(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req setPublishedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}

	post, err := h.posts.SetPublished(c.Request().Context(), id, req.Published)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Post unpublished"
	if req.Published {
		message = "Post published"
	}

	return response.Success(c, http.StatusOK, post, message)
}

type seriesRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Slug          string `json:"slug" validate:"required,max=200"`
	Description   string `json:"description"`
	CoverImageURL string `json:"coverImageUrl"`
}

// CreateSeries persists a new series.
func (h *AdminHandler) CreateSeries(c echo.Context) error {
	var req seriesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid series input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title and slug are required")
	}

	series, err := h.series.Create(c.Request().Context(), &usecase.SeriesInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, series, "Series created")
}

// UpdateSeries modifies an existing series.
func (h *AdminHandler) UpdateSeries(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid series ID")
	}

	var req seriesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid series input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title and slug are required")
	}

	series, err := h.series.Update(c.Request().Context(), id, &usecase.SeriesInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "Series updated")
}

// DeleteSeries removes a series; member posts survive detached.
func (h *AdminHandler) DeleteSeries(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid series ID")
	}

	if err := h.series.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Series deleted")
}

type projectRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Slug          string   `json:"slug" validate:"required,max=200"`
	Summary       string   `json:"summary"`
	Description   string   `json:"description"`
	CoverImageURL string   `json:"coverImageUrl"`
	RepoURL       string   `json:"repoUrl"`
	DemoURL       string   `json:"demoUrl"`
	TechStack     []string `json:"techStack"`
	Featured      bool     `json:"featured"`
}

func (r *projectRequest) toInput() *usecase.ProjectInput {
	return &usecase.ProjectInput{
		Title:         r.Title,
		Slug:          r.Slug,
		Summary:       r.Summary,
		Description:   r.Description,
		CoverImageURL: r.CoverImageURL,
		RepoURL:       r.RepoURL,
		DemoURL:       r.DemoURL,
		TechStack:     r.TechStack,
		Featured:      r.Featured,
	}
}

// CreateProject persists a new portfolio project.
func (h *AdminHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title and slug are required")
	}

	project, err := h.projects.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created")
}

// UpdateProject modifies an existing project.
func (h *AdminHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title and slug are required")
	}

	project, err := h.projects.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated")
}

// DeleteProject removes a project.
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Project deleted")
}

// UploadMedia stores an uploaded file in the media bucket and returns its
// public URL. Keys are namespaced by month so the bucket stays browsable.
func (h *AdminHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.New().String(),
		filepath.Ext(fileHeader.Filename),
	)

	url, err := h.media.Upload(c.Request().Context(), key, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"key": key,
		"url": url,
	}, "Media uploaded")
}

// CleanupSessions purges expired or invalidated session rows.
func (h *AdminHandler) CleanupSessions(c echo.Context) error {
	deleted, err := h.sessions.CleanupSessions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deletedCount": deleted}, "Session cleanup complete")
}
