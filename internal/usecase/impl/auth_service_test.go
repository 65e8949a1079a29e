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

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(txManager, userRepo, hasher, tokenService, newDiscardLogger())

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:      "Test User",
		Email:     "test@example.com",
		Password:  "Password123!",
		TempToken: "temp-token",
		UserAgent: "test-agent",
		IP:        "203.0.113.7",
	}

	fx.tokenService.EXPECT().
		ValidateToken("temp-token").
		Return(&service.Claims{Email: input.Email, Purpose: TempTokenPurposeRegistration}, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.tokenService.EXPECT().
		GenerateTokenPair(mock.AnythingOfType("*entity.User")).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(nil, repository.ErrUserNotFound)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)

		// Registration opens the account's first session in the same transaction.
		mockSessionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Session")).
			Run(func(ctx context.Context, session *entity.Session) {
				assert.Equal(t, "refresh-hash", session.TokenHash)
				assert.True(t, session.Valid)
				assert.Equal(t, "test-agent", session.UserAgent)
				assert.Equal(t, "203.0.113.7", session.IP)
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_Register_InvalidTempToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:      "Test User",
		Email:     "test@example.com",
		Password:  "Password123!",
		TempToken: "garbage",
	}

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Register_TempTokenEmailMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:      "Test User",
		Email:     "test@example.com",
		Password:  "Password123!",
		TempToken: "temp-token",
	}

	fx.tokenService.EXPECT().
		ValidateToken("temp-token").
		Return(&service.Claims{Email: "someone-else@example.com", Purpose: TempTokenPurposeRegistration}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Register_WrongTokenPurpose(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:      "Test User",
		Email:     "test@example.com",
		Password:  "Password123!",
		TempToken: "temp-token",
	}

	fx.tokenService.EXPECT().
		ValidateToken("temp-token").
		Return(&service.Claims{Email: input.Email, Purpose: "password-reset"}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:      "Test User",
		Email:     "taken@example.com",
		Password:  "Password123!",
		TempToken: "temp-token",
	}

	fx.tokenService.EXPECT().
		ValidateToken("temp-token").
		Return(&service.Claims{Email: input.Email, Purpose: TempTokenPurposeRegistration}, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}
	input := &usecase.LoginInput{
		Email:     user.Email,
		Password:  "Password123!",
		UserAgent: "test-agent",
		IP:        "203.0.113.7",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokenPair(user).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Session")).
			Run(func(ctx context.Context, session *entity.Session) {
				assert.Equal(t, userID, session.UserID)
				assert.Equal(t, "refresh-hash", session.TokenHash)
				assert.True(t, session.Valid)
				assert.Equal(t, "test-agent", session.UserAgent)
				assert.Equal(t, "203.0.113.7", session.IP)
			}).
			Return(nil)
	})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "missing@example.com", Password: "whatever"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", Role: entity.RoleUser}
	session := &entity.Session{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "old-hash",
		Valid:     true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Email: user.Email}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().GenerateTokenPair(user).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByTokenHashForUpdate(ctx, "old-hash").
			Return(session, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockSessionRepo.EXPECT().
			Rotate(ctx, sessionID, "new-hash", mock.AnythingOfType("time.Time")).
			Return(nil)
	})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Refresh_ReusedTokenIsBurned(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("reused-refresh").
		Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("reused-refresh").Return("reused-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByTokenHashForUpdate(ctx, "reused-hash").
			Return(nil, repository.ErrSessionNotFound)

		// The reuse signal burns whatever row still carries the hash.
		mockSessionRepo.EXPECT().
			InvalidateByTokenHash(ctx, "reused-hash").
			Return(nil)
	})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "reused-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:        sessionID,
		UserID:    uuid.New(),
		TokenHash: "stale-hash",
		Valid:     true,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateToken("stale-refresh").
		Return(&service.Claims{UserID: session.UserID}, nil)
	fx.tokenService.EXPECT().HashToken("stale-refresh").Return("stale-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByTokenHashForUpdate(ctx, "stale-hash").
			Return(session, nil)
		mockSessionRepo.EXPECT().Invalidate(ctx, sessionID).Return(nil)
	})

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().InvalidateByTokenHash(ctx, "refresh-hash").Return(nil)
	})

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	assert.NoError(t, err)
}

func TestAuthService_Logout_EmptyTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: ""})

	assert.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenStillInvalidates(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("expired-token").
		Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("expired-token").Return("expired-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().InvalidateByTokenHash(ctx, "expired-hash").Return(nil)
	})

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired-token"})

	assert.NoError(t, err)
}

func TestAuthService_Init_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "refresh-hash",
		Valid:     true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Email: user.Email}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByTokenHash(ctx, "refresh-hash").
			Return(session, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	output, err := fx.service.Init(ctx, &usecase.InitInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Init_NoActiveSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByTokenHash(ctx, "refresh-hash").
			Return(nil, repository.ErrSessionNotFound)
	})

	output, err := fx.service.Init(ctx, &usecase.InitInput{RefreshToken: "refresh-token"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestAuthService_Init_ExpiredSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "stale-hash",
		Valid:     true,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateToken("stale-token").
		Return(&service.Claims{UserID: session.UserID}, nil)
	fx.tokenService.EXPECT().HashToken("stale-token").Return("stale-hash")

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockSessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(mockSessionRepo)

		mockSessionRepo.EXPECT().
			FindActiveByTokenHash(ctx, "stale-hash").
			Return(session, nil)
	})

	output, err := fx.service.Init(ctx, &usecase.InitInput{RefreshToken: "stale-token"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}
