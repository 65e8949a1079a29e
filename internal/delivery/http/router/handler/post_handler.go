package handler

import (
	"net/http"
	"strconv"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/domain/entity"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler serves the public reading surface of the blog.
type PostHandler struct {
	posts usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(posts usecase.PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPosts returns a page of published posts, optionally narrowed to a series.
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("perPage"))

	output, err := h.posts.ListPublished(c.Request().Context(), &usecase.ListPostsInput{
		SeriesSlug: c.QueryParam("series"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"posts": output.Posts,
		"total": output.Total,
	}, "")
}

// GetPost returns one post by slug. Logged-in viewers get a view recorded and
// their like state resolved; admins may read drafts.
func (h *PostHandler) GetPost(c echo.Context) error {
	viewerID := optionalUserID(c)
	includeDrafts := c.Get(middleware.ContextKeyRole) == entity.RoleAdmin

	post, err := h.posts.GetBySlug(c.Request().Context(), c.Param("slug"), viewerID, includeDrafts)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// ToggleLike flips the caller's like on a post.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	liked, likeCount, err := h.posts.ToggleLike(c.Request().Context(), postID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"liked":     liked,
		"likeCount": likeCount,
	}, "")
}

// ShareQR renders a PNG QR code pointing at the post's canonical URL.
func (h *PostHandler) ShareQR(c echo.Context) error {
	png, err := h.posts.ShareQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Blob(c, http.StatusOK, "image/png", png)
}

// optionalUserID reads the viewer identity left by OptionalAuthenticate,
// returning nil for anonymous requests.
func optionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok && userID != uuid.Nil {
		return &userID
	}

	return nil
}
