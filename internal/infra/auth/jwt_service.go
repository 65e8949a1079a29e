// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quill/config"
	"quill/internal/domain/entity"
	"quill/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Shared HMAC key for all token kinds.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	tempTTL    time.Duration // Time-to-live for purpose-tagged temp tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		secret:     cfg.JWT.Secret,
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
		tempTTL:    cfg.JWT.TempTTL,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for a given user.
// Both tokens carry identical claims; only their expiries differ.
func (s *jwtService) GenerateTokenPair(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(user, s.accessTTL, "")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(user, s.refreshTTL, "")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateTempToken creates a short-lived token tagged with a purpose, carrying
// only a verified email. It has no subject because no user exists yet.
func (s *jwtService) GenerateTempToken(email string, purpose string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tempTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the signature and expiry of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// HashToken returns the SHA-256 hex digest of a token string.
// Refresh tokens are stored only in this hashed form.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with the user's identity claims.
// The random jti keeps every issued token distinct even when two are minted
// within the same second for the same user; the session store's unique
// token-hash column relies on this.
func (s *jwtService) generateToken(user *entity.User, ttl time.Duration, purpose string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
