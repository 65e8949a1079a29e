package impl

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service        usecase.PostUsecase
	txManager      *mockRepo.MockTransactionManager
	eventPublisher *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	svc := NewPostService(txManager, eventPublisher, qrcodeService, newTestSiteConfig(), newDiscardLogger())

	return postServiceFixtures{
		service:        svc,
		txManager:      txManager,
		eventPublisher: eventPublisher,
		qrcodeService:  qrcodeService,
	}
}

func TestPostService_ListPublished_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	posts := []*entity.Post{{ID: postID, Slug: "hello-world", Published: true}}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		expectedFilter := repository.PostFilter{PublishedOnly: true, Limit: 10, Offset: 0}
		mockPostRepo.EXPECT().List(ctx, expectedFilter).Return(posts, nil)
		mockPostRepo.EXPECT().Count(ctx, expectedFilter).Return(int64(1), nil)

		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionLike).Return(int64(3), nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionView).Return(int64(40), nil)
	})

	output, err := fx.service.ListPublished(ctx, &usecase.ListPostsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	require.Len(t, output.Posts, 1)
	assert.Equal(t, int64(3), output.Posts[0].LikeCount)
	assert.Equal(t, int64(40), output.Posts[0].ViewCount)
}

func TestPostService_ListPublished_SeriesFilter(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	seriesID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockSeriesRepo := mockRepo.NewMockSeriesRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().SeriesRepo().Return(mockSeriesRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		mockSeriesRepo.EXPECT().
			FindBySlug(ctx, "go-basics").
			Return(&entity.Series{ID: seriesID, Slug: "go-basics"}, nil)

		expectedFilter := repository.PostFilter{PublishedOnly: true, SeriesID: &seriesID, Limit: 10, Offset: 0}
		mockPostRepo.EXPECT().List(ctx, expectedFilter).Return([]*entity.Post{}, nil)
		mockPostRepo.EXPECT().Count(ctx, expectedFilter).Return(int64(0), nil)
	})

	output, err := fx.service.ListPublished(ctx, &usecase.ListPostsInput{SeriesSlug: "go-basics"})

	require.NoError(t, err)
	assert.Zero(t, output.Total)
	assert.Empty(t, output.Posts)
}

func TestPostService_ListPublished_UnknownSeries(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSeriesRepo := mockRepo.NewMockSeriesRepository(t)
		factory.EXPECT().SeriesRepo().Return(mockSeriesRepo)

		mockSeriesRepo.EXPECT().
			FindBySlug(ctx, "missing").
			Return(nil, repository.ErrSeriesNotFound)
	})

	output, err := fx.service.ListPublished(ctx, &usecase.ListPostsInput{SeriesSlug: "missing"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSeriesNotFound)
}

func TestPostService_GetBySlug_RecordsViewForViewer(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	viewerID := uuid.New()
	post := &entity.Post{ID: postID, Slug: "hello-world", Published: true}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		mockPostRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(post, nil)
		mockReactionRepo.EXPECT().RecordView(ctx, postID, viewerID).Return(nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionLike).Return(int64(1), nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionView).Return(int64(5), nil)
		mockReactionRepo.EXPECT().HasReaction(ctx, postID, viewerID, entity.ReactionLike).Return(true, nil)
	})

	result, err := fx.service.GetBySlug(ctx, "hello-world", &viewerID, false)

	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(5), result.ViewCount)
}

func TestPostService_GetBySlug_ViewFailureDoesNotFailRead(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	viewerID := uuid.New()
	post := &entity.Post{ID: postID, Slug: "hello-world", Published: true}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		mockPostRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(post, nil)
		mockReactionRepo.EXPECT().RecordView(ctx, postID, viewerID).Return(errors.New("database error"))
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionLike).Return(int64(0), nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionView).Return(int64(0), nil)
		mockReactionRepo.EXPECT().HasReaction(ctx, postID, viewerID, entity.ReactionLike).Return(false, nil)
	})

	result, err := fx.service.GetBySlug(ctx, "hello-world", &viewerID, false)

	require.NoError(t, err)
	assert.Equal(t, postID, result.ID)
}

func TestPostService_GetBySlug_DraftHiddenFromPublic(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	post := &entity.Post{ID: uuid.New(), Slug: "draft-post", Published: false}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindBySlug(ctx, "draft-post").Return(post, nil)
	})

	result, err := fx.service.GetBySlug(ctx, "draft-post", nil, false)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_GetBySlug_DraftVisibleToAdmin(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	post := &entity.Post{ID: postID, Slug: "draft-post", Published: false}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		mockPostRepo.EXPECT().FindBySlug(ctx, "draft-post").Return(post, nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionLike).Return(int64(0), nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionView).Return(int64(0), nil)
	})

	result, err := fx.service.GetBySlug(ctx, "draft-post", nil, true)

	require.NoError(t, err)
	assert.Equal(t, postID, result.ID)
}

func TestPostService_Create_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreatePostInput{
		Title:    "Hello World",
		Slug:     "  Hello-World  ",
		Summary:  "first post",
		Content:  "body",
		AuthorID: authorID,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Post")).
			Run(func(ctx context.Context, post *entity.Post) {
				post.ID = uuid.New()
			}).
			Return(nil)
	})

	post, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, authorID, post.AuthorID)
	assert.False(t, post.Published)
}

func TestPostService_Create_SlugTaken(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{Title: "Hello", Slug: "hello", AuthorID: uuid.New()}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Post")).
			Return(repository.ErrSlugTaken)
	})

	post, err := fx.service.Create(ctx, input)

	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)
}

func TestPostService_Create_UnknownSeries(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	seriesID := uuid.New()
	input := &usecase.CreatePostInput{
		Title:    "Hello",
		Slug:     "hello",
		SeriesID: &seriesID,
		AuthorID: uuid.New(),
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSeriesRepo := mockRepo.NewMockSeriesRepository(t)
		factory.EXPECT().SeriesRepo().Return(mockSeriesRepo)

		mockSeriesRepo.EXPECT().
			FindByID(ctx, seriesID).
			Return(nil, repository.ErrSeriesNotFound)
	})

	post, err := fx.service.Create(ctx, input)

	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrSeriesNotFound)
}

func TestPostService_SetPublished_FirstPublishStampsTimestamp(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	existing := &entity.Post{ID: postID, Slug: "hello", Title: "Hello", Published: false}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, postID).Return(existing, nil)
		mockPostRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Post")).
			Run(func(ctx context.Context, post *entity.Post) {
				assert.True(t, post.Published)
				assert.NotNil(t, post.PublishedAt)
			}).
			Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishPostEvent(ctx, mock.AnythingOfType("service.PostEvent")).
		Run(func(ctx context.Context, event service.PostEvent) {
			assert.Equal(t, service.PostPublished, event.Type)
			assert.Equal(t, postID, event.PostID)
			assert.Equal(t, "hello", event.Slug)
		}).
		Return(nil)

	post, err := fx.service.SetPublished(ctx, postID, true)

	require.NoError(t, err)
	assert.True(t, post.Published)
	require.NotNil(t, post.PublishedAt)
}

func TestPostService_SetPublished_RepublishKeepsTimestamp(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	firstPublish := time.Now().Add(-48 * time.Hour)
	existing := &entity.Post{
		ID:          postID,
		Slug:        "hello",
		Published:   false,
		PublishedAt: &firstPublish,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, postID).Return(existing, nil)
		mockPostRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishPostEvent(ctx, mock.AnythingOfType("service.PostEvent")).
		Return(nil)

	post, err := fx.service.SetPublished(ctx, postID, true)

	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, firstPublish, *post.PublishedAt)
}

func TestPostService_SetPublished_EventFailureTolerated(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	publishedAt := time.Now()
	existing := &entity.Post{ID: postID, Slug: "hello", Published: true, PublishedAt: &publishedAt}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().FindByID(ctx, postID).Return(existing, nil)
		mockPostRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishPostEvent(ctx, mock.AnythingOfType("service.PostEvent")).
		Run(func(ctx context.Context, event service.PostEvent) {
			assert.Equal(t, service.PostUnpublished, event.Type)
		}).
		Return(errors.New("broker unavailable"))

	post, err := fx.service.SetPublished(ctx, postID, false)

	require.NoError(t, err)
	assert.False(t, post.Published)
}

func TestPostService_ToggleLike_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()
	post := &entity.Post{ID: postID, Published: true}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		mockPostRepo.EXPECT().FindByID(ctx, postID).Return(post, nil)
		mockReactionRepo.EXPECT().ToggleLike(ctx, postID, userID).Return(true, nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionLike).Return(int64(8), nil)
	})

	liked, likeCount, err := fx.service.ToggleLike(ctx, postID, userID)

	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(8), likeCount)
}

func TestPostService_ToggleLike_DraftRejected(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().
			FindByID(ctx, postID).
			Return(&entity.Post{ID: postID, Published: false}, nil)
	})

	liked, likeCount, err := fx.service.ToggleLike(ctx, postID, userID)

	assert.False(t, liked)
	assert.Zero(t, likeCount)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_ShareQR_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	post := &entity.Post{ID: postID, Slug: "hello-world", Published: true}
	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		mockReactionRepo := mockRepo.NewMockReactionRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)
		factory.EXPECT().ReactionRepo().Return(mockReactionRepo)

		mockPostRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(post, nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionLike).Return(int64(0), nil)
		mockReactionRepo.EXPECT().CountByPost(ctx, postID, entity.ReactionView).Return(int64(0), nil)
	})

	fx.qrcodeService.EXPECT().
		GenerateShareQR("https://quill.example.com/posts/hello-world").
		Return(pngBytes, nil)

	png, err := fx.service.ShareQR(ctx, "hello-world")

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestPostService_ShareQR_UnknownPost(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(mockPostRepo)

		mockPostRepo.EXPECT().
			FindBySlug(ctx, "missing").
			Return(nil, repository.ErrPostNotFound)
	})

	png, err := fx.service.ShareQR(ctx, "missing")

	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
