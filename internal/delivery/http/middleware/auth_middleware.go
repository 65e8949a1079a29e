package middleware

import (
	"strings"

	"quill/internal/delivery/http/response"
	"quill/internal/domain/entity"
	"quill/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
	ContextKeyClaims = "claims"
)

// accessCookieName is the httpOnly cookie browsers send in place of an
// Authorization header.
const accessCookieName = "accessToken"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return response.Unauthorized(c, "MISSING_TOKEN", err.Error())
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Temp tokens carry a purpose and may only complete registration,
		// never authenticate a request.
		if claims.Purpose != "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token not valid for authentication")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's identity when a token is present
// but lets anonymous requests through. Used by public reads that personalize
// their output for logged-in viewers.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Purpose != "" {
			return next(c)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "PERMISSION_DENIED", "Requires '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		// Browser clients carry the access token as a cookie instead.
		if cookie, err := c.Cookie(accessCookieName); err == nil && cookie.Value != "" {
			return cookie.Value, nil
		}

		return "", errors.New("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", errors.New("Invalid token format, must be Bearer token")
	}

	return tokenString, nil
}
