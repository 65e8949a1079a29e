// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
)

// TempTokenPurposeRegistration tags temp tokens minted by OTP verification.
const TempTokenPurposeRegistration = "registration"

// authService implements the AuthUsecase interface.
// userRepo is the plain, non-transactional repository; credential lookups go
// through it so the slow bcrypt compare never holds a transaction open.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates an account for an OTP-verified email.
// The temp token proves the email was verified moments ago; its embedded email
// must match the registration payload exactly.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", "email", input.Email)

	claims, err := srv.tokenService.ValidateToken(input.TempToken)
	if err != nil {
		srv.logger.Warn("Registration with invalid temp token", "error", err)

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("registration token invalid or expired")
	}
	if claims.Purpose != TempTokenPurposeRegistration || claims.Email != input.Email {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("registration token does not match email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		// The unique index on email is the last line of defense; this check
		// turns the common case into a clean domain error.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailTaken.WrapMessage("registration failed")
			}

			return errors.WithStack(err)
		}

		// Registration logs the user straight in: issue the first token pair
		// and open its session in the same transaction.
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokenPair(newUser)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newSession := &entity.Session{
			UserID:    newUser.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			Valid:     true,
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
			UserAgent: input.UserAgent,
			IP:        input.IP,
		}
		if err := sessionRepo.Create(ctx, newSession); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute registration transaction", "error", err, "email", input.Email)

		return nil, err
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{
		User:         registeredUser,
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// Login verifies credentials and opens a new session.
// The bcrypt check runs outside the transaction; only the session insert
// needs atomicity.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	// 1. Find the account. A missing user and a wrong password produce
	// the same error so the response never confirms which emails exist.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "email", input.Email, "error", "password mismatch")

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Generate a fresh token pair; signing is pure and needs no database.
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// 4. Persist the session; only the token's hash touches the database.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newSession := &entity.Session{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			Valid:     true,
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
			UserAgent: input.UserAgent,
			IP:        input.IP,
		}

		return errors.WithStack(repoFactory.SessionRepo().Create(ctx, newSession))
	})
	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// Refresh rotates the presented refresh token for a new pair.
// The active-session lookup takes a row lock, so two clients racing with the
// same token serialize: the winner rotates, the loser finds nothing and the
// session is burned as a reuse signal.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.logger.Debug("Attempting to refresh token")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh token invalid or expired")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var sessionUser *entity.User
	var newAccessToken, newRefreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		// 1. Look up the live session under a row lock.
		session, err := sessionRepo.FindActiveByTokenHashForUpdate(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				// A cryptographically valid token with no live session means
				// it was already rotated or revoked. Burn whatever row still
				// carries the hash so a stolen token can't linger.
				if burnErr := sessionRepo.InvalidateByTokenHash(ctx, tokenHash); burnErr != nil {
					srv.logger.Warn("Failed to burn reused refresh token", "error", burnErr)
				}

				return domainerrors.ErrSessionNotFound.WrapMessage("refresh token no longer active")
			}

			return errors.Wrap(err, "failed to find session")
		}

		// 2. The row may have outlived its expiry; treat that as a dead session.
		if !session.Usable(time.Now()) {
			if err := sessionRepo.Invalidate(ctx, session.ID); err != nil {
				srv.logger.Warn("Failed to invalidate expired session", "error", err)
			}

			return domainerrors.ErrSessionExpired.WrapMessage("session expired")
		}

		// 3. Re-read the user so rotated tokens carry current role and email.
		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find session user")
		}

		// 4. Generate the new pair and rotate the row in place.
		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		newExpiry := time.Now().Add(srv.tokenService.RefreshTokenDuration())
		if err := sessionRepo.Rotate(ctx, session.ID, srv.tokenService.HashToken(newRefreshTokenString), newExpiry); err != nil {
			return errors.Wrap(err, "failed to rotate session")
		}
		sessionUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Refresh failed", "error", err.Error())

		return nil, err
	}

	return &usecase.RefreshOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
		User:         sessionUser,
	}, nil
}

// Logout invalidates the session carrying the presented refresh token.
// Always succeeds from the caller's point of view: logging out twice, or with
// a garbage token, leaves the same state behind.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.logger.Debug("Attempting to log out")

	if input.RefreshToken == "" {
		return nil
	}

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Invalidate the stored row regardless; the hash lookup is harmless
		// for tokens that never existed.
		srv.logger.Debug("Logout with invalid token", "error", err)
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SessionRepo().InvalidateByTokenHash(ctx, tokenHash)
	})
	if err != nil {
		srv.logger.Error("Failed to execute logout transaction", "error", err)

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.logger.Debug("Logged out successfully")

	return nil
}

// Init resolves the refresh token presented at app bootstrap into a user payload.
// The lookup goes through the session row rather than the token's claims so a
// revoked session stops bootstrapping immediately.
func (srv *authService) Init(ctx context.Context, input *usecase.InitInput) (*usecase.InitOutput, error) {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh token invalid or expired")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.SessionRepo().FindActiveByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrSessionNotFound.WrapMessage("no active session")
			}

			return errors.Wrap(err, "failed to find session")
		}
		if !session.Usable(time.Now()) {
			return domainerrors.ErrSessionExpired.WrapMessage("session expired")
		}

		user, err = repoFactory.UserRepo().FindByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("account no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.InitOutput{User: user}, nil
}
