package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/delivery/http/middleware"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	mockUsecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type postHandlerFixtures struct {
	handler *PostHandler
	posts   *mockUsecase.MockPostUsecase
}

func createTestPostHandler(t *testing.T) postHandlerFixtures {
	t.Helper()

	posts := mockUsecase.NewMockPostUsecase(t)

	return postHandlerFixtures{
		handler: NewPostHandler(posts),
		posts:   posts,
	}
}

func newPostContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPostHandler_ListPosts_Success(t *testing.T) {
	f := createTestPostHandler(t)
	c, rec := newPostContext(http.MethodGet, "/posts?page=2&perPage=5&series=go-basics")

	f.posts.EXPECT().
		ListPublished(mock.Anything, mock.AnythingOfType("*usecase.ListPostsInput")).
		Run(func(_ context.Context, input *usecase.ListPostsInput) {
			assert.Equal(t, 2, input.Page)
			assert.Equal(t, 5, input.PerPage)
			assert.Equal(t, "go-basics", input.SeriesSlug)
		}).
		Return(&usecase.ListPostsOutput{
			Posts: []*entity.Post{{ID: uuid.New(), Slug: "hello-world", Title: "Hello World"}},
			Total: 1,
		}, nil)

	err := f.handler.ListPosts(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello-world")
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestPostHandler_ListPosts_UsecaseError(t *testing.T) {
	f := createTestPostHandler(t)
	c, _ := newPostContext(http.MethodGet, "/posts")

	f.posts.EXPECT().
		ListPublished(mock.Anything, mock.AnythingOfType("*usecase.ListPostsInput")).
		Return(nil, domainerrors.ErrSeriesNotFound)

	err := f.handler.ListPosts(c)

	assert.Error(t, err)
}

func TestPostHandler_GetPost_Anonymous(t *testing.T) {
	f := createTestPostHandler(t)
	c, rec := newPostContext(http.MethodGet, "/posts/hello-world")
	c.SetPath("/posts/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("hello-world")

	f.posts.EXPECT().
		GetBySlug(mock.Anything, "hello-world", (*uuid.UUID)(nil), false).
		Return(&entity.Post{ID: uuid.New(), Slug: "hello-world", Title: "Hello World", Published: true}, nil)

	err := f.handler.GetPost(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello World")
}

func TestPostHandler_GetPost_AdminSeesDrafts(t *testing.T) {
	f := createTestPostHandler(t)
	adminID := uuid.New()

	c, rec := newPostContext(http.MethodGet, "/posts/draft-post")
	c.SetPath("/posts/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("draft-post")
	c.Set(middleware.ContextKeyUserID, adminID)
	c.Set(middleware.ContextKeyRole, entity.RoleAdmin)

	f.posts.EXPECT().
		GetBySlug(mock.Anything, "draft-post", &adminID, true).
		Return(&entity.Post{ID: uuid.New(), Slug: "draft-post", Published: false}, nil)

	err := f.handler.GetPost(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostHandler_ToggleLike_Success(t *testing.T) {
	f := createTestPostHandler(t)
	userID := uuid.New()
	postID := uuid.New()

	c, rec := newPostContext(http.MethodPost, "/posts/"+postID.String()+"/like")
	c.SetPath("/posts/:id/like")
	c.SetParamNames("id")
	c.SetParamValues(postID.String())
	c.Set(middleware.ContextKeyUserID, userID)

	f.posts.EXPECT().
		ToggleLike(mock.Anything, postID, userID).
		Return(true, int64(8), nil)

	err := f.handler.ToggleLike(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"liked":true`)
	assert.Contains(t, rec.Body.String(), `"likeCount":8`)
}

func TestPostHandler_ToggleLike_Unauthenticated(t *testing.T) {
	f := createTestPostHandler(t)
	postID := uuid.New()

	c, rec := newPostContext(http.MethodPost, "/posts/"+postID.String()+"/like")
	c.SetPath("/posts/:id/like")
	c.SetParamNames("id")
	c.SetParamValues(postID.String())

	err := f.handler.ToggleLike(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostHandler_ToggleLike_InvalidID(t *testing.T) {
	f := createTestPostHandler(t)

	c, rec := newPostContext(http.MethodPost, "/posts/not-a-uuid/like")
	c.SetPath("/posts/:id/like")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := f.handler.ToggleLike(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_ShareQR_Success(t *testing.T) {
	f := createTestPostHandler(t)

	c, rec := newPostContext(http.MethodGet, "/posts/hello-world/qrcode")
	c.SetPath("/posts/:slug/qrcode")
	c.SetParamNames("slug")
	c.SetParamValues("hello-world")

	png := []byte{0x89, 0x50, 0x4e, 0x47}
	f.posts.EXPECT().
		ShareQR(mock.Anything, "hello-world").
		Return(png, nil)

	err := f.handler.ShareQR(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
