package impl

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectServiceFixtures struct {
	service   usecase.ProjectUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewProjectService(txManager, newDiscardLogger())

	return projectServiceFixtures{service: svc, txManager: txManager}
}

func TestProjectService_List_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projects := []*entity.Project{
		{ID: uuid.New(), Slug: "quill", Featured: true},
		{ID: uuid.New(), Slug: "side-project"},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProjectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().ProjectRepo().Return(mockProjectRepo)

		mockProjectRepo.EXPECT().List(ctx).Return(projects, nil)
	})

	list, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, projects, list)
}

func TestProjectService_GetBySlug_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProjectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().ProjectRepo().Return(mockProjectRepo)

		mockProjectRepo.EXPECT().
			FindBySlug(ctx, "missing").
			Return(nil, repository.ErrProjectNotFound)
	})

	project, err := fx.service.GetBySlug(ctx, "missing")

	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_Create_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	input := &usecase.ProjectInput{
		Title:     "Quill",
		Slug:      " Quill ",
		Summary:   "personal blog engine",
		TechStack: []string{"go", "postgres", "redis"},
		Featured:  true,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProjectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().ProjectRepo().Return(mockProjectRepo)

		mockProjectRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Project")).
			Run(func(ctx context.Context, project *entity.Project) {
				project.ID = uuid.New()
			}).
			Return(nil)
	})

	project, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "quill", project.Slug)
	assert.Equal(t, []string{"go", "postgres", "redis"}, project.TechStack)
	assert.True(t, project.Featured)
}

func TestProjectService_Create_SlugTaken(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	input := &usecase.ProjectInput{Title: "Quill", Slug: "quill"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProjectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().ProjectRepo().Return(mockProjectRepo)

		mockProjectRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Project")).
			Return(repository.ErrSlugTaken)
	})

	project, err := fx.service.Create(ctx, input)

	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProjectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().ProjectRepo().Return(mockProjectRepo)

		mockProjectRepo.EXPECT().
			FindByID(ctx, projectID).
			Return(nil, repository.ErrProjectNotFound)
	})

	project, err := fx.service.Update(ctx, projectID, &usecase.ProjectInput{Title: "New", Slug: "new"})

	assert.Nil(t, project)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_Delete_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProjectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().ProjectRepo().Return(mockProjectRepo)

		mockProjectRepo.EXPECT().Delete(ctx, projectID).Return(nil)
	})

	err := fx.service.Delete(ctx, projectID)

	assert.NoError(t, err)
}
