package impl

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewSessionService(txManager, newDiscardLogger())

	return sessionServiceFixtures{service: svc, txManager: txManager}
}

func TestSessionService_GetActiveSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.Session{
		{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: "current-hash",
			UserAgent: "laptop",
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: "other-hash",
			UserAgent: "phone",
			CreatedAt: time.Now().Add(-time.Hour),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().FindActiveByUserID(ctx, userID).Return(sessions, nil)
	})

	infos, err := fx.service.GetActiveSessions(ctx, userID, "current-hash")

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(t, infos[0].Current)
	assert.False(t, infos[1].Current)
	assert.Equal(t, "phone", infos[1].UserAgent)
}

func TestSessionService_GetActiveSessions_ListError(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByUserID(ctx, userID).
			Return(nil, errors.New("database error"))
	})

	infos, err := fx.service.GetActiveSessions(ctx, userID, "hash")

	assert.Nil(t, infos)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list sessions")
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByUserID(ctx, userID).
			Return([]*entity.Session{{ID: sessionID, UserID: userID}}, nil)
		mockSessionRepo.EXPECT().Invalidate(ctx, sessionID).Return(nil)
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	assert.NoError(t, err)
}

func TestSessionService_RevokeSession_NotOwned(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	foreignSessionID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByUserID(ctx, userID).
			Return([]*entity.Session{{ID: uuid.New(), UserID: userID}}, nil)
	})

	err := fx.service.RevokeSession(ctx, userID, foreignSessionID)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_RevokeAllSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().InvalidateByUserID(ctx, userID).Return(nil)
	})

	err := fx.service.RevokeAllSessions(ctx, userID)

	assert.NoError(t, err)
}

func TestSessionService_CleanupSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().PurgeExpiredOrInvalid(ctx).Return(int64(42), nil)
	})

	deleted, err := fx.service.CleanupSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), deleted)
}

func TestSessionService_CleanupSessions_Error(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			PurgeExpiredOrInvalid(ctx).
			Return(int64(0), errors.New("database error"))
	})

	deleted, err := fx.service.CleanupSessions(ctx)

	assert.Zero(t, deleted)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to purge sessions")
}
