package auth

import (
	"testing"
	"time"

	"quill/config"
	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test_secret_key_very_long_for_testing",
			AccessTTL:  time.Minute * 15,
			RefreshTTL: time.Hour * 24 * 7,
			TempTTL:    time.Minute * 10,
		},
	}
}

func TestJWTService_GenerateAndValidateTokenPair(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "reader@example.com",
		Role:  entity.RoleAdmin,
	}

	accessToken, refreshToken, err := jwtService.GenerateTokenPair(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Both tokens carry the same identity claims
	accessClaims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, entity.RoleAdmin, accessClaims.Role)
	assert.Empty(t, accessClaims.Purpose)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, user.ID, refreshClaims.UserID)

	// Refresh token must outlive the access token
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestJWTService_GenerateTempToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	token, err := jwtService.GenerateTempToken("newcomer@example.com", "registration")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "newcomer@example.com", claims.Email)
	assert.Equal(t, "registration", claims.Purpose)
	assert.Equal(t, uuid.Nil, claims.UserID)
	assert.Empty(t, claims.Subject)
}

func TestJWTService_BackToBackIssuanceIsDistinct(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "reader@example.com",
		Role:  entity.RoleUser,
	}

	// Multi-device logins can land within the same second; every issued
	// token, and therefore every stored hash, must still be unique.
	tokens := map[string]bool{}
	hashes := map[string]bool{}
	for range 5 {
		accessToken, refreshToken, err := jwtService.GenerateTokenPair(user)
		assert.NoError(t, err)
		tokens[accessToken] = true
		tokens[refreshToken] = true
		hashes[jwtService.HashToken(refreshToken)] = true
	}
	assert.Len(t, tokens, 10)
	assert.Len(t, hashes, 5)

	tempA, err := jwtService.GenerateTempToken("reader@example.com", "registration")
	assert.NoError(t, err)
	tempB, err := jwtService.GenerateTempToken("reader@example.com", "registration")
	assert.NoError(t, err)
	assert.NotEqual(t, tempA, tempB)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Secret = "another_secret_entirely"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateTempToken("reader@example.com", "registration")
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.TempTTL = -time.Minute
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateTempToken("reader@example.com", "registration")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Secret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-opaque-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, jwtService.HashToken("some-opaque-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-token"))
}

func TestJWTService_Durations(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	assert.Equal(t, time.Minute*15, jwtService.AccessTokenDuration())
	assert.Equal(t, time.Hour*24*7, jwtService.RefreshTokenDuration())
}
