// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

// ContextKey names the values the middleware stores in the Gin context.
type ContextKey string

const principalKey ContextKey = "principal"

// Principal is the caller identified by the access token.
type Principal struct {
	UserID   uuid.UUID
	Email    string
	Role     entity.UserRole
	DriverID *uuid.UUID
}

// AuthMiddleware checks bearer access tokens and the caller's role.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware validates access tokens with the given service.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects requests without a valid access token and stores the Principal.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			abortAuth(c, http.StatusUnauthorized, domainerror.ErrCodeMissingToken, "Authorization header is required")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abortAuth(c, http.StatusUnauthorized, domainerror.ErrCodeInvalidToken, "Invalid authorization header format")
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			abortAuth(c, http.StatusUnauthorized, domainerror.ErrCodeMissingToken, "Token is required")
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(string(principalKey), Principal{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     claims.Role,
			DriverID: claims.DriverID,
		})
		c.Next()
	}
}

// RequireRole lets only the given roles through. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortAuth(c, http.StatusUnauthorized, domainerror.ErrCodeMissingToken, "User not authenticated")
			return
		}

		for _, allowed := range roles {
			if principal.Role == allowed {
				c.Next()
				return
			}
		}
		abortAuth(c, http.StatusForbidden, domainerror.ErrCodeForbidden, "Insufficient permissions")
	}
}

// RequireDriver lets only accounts linked to a driver through.
func (m *AuthMiddleware) RequireDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetDriverIDFromContext(c); !ok {
			abortAuth(c, http.StatusForbidden, domainerror.ErrCodeForbidden, "Account is not linked to a driver")
			return
		}
		c.Next()
	}
}

func abortAuth(c *gin.Context, status int, code domainerror.AuthErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetPrincipal returns the caller stored by Authenticate.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(string(principalKey))
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return principal.UserID, true
}

// GetDriverIDFromContext returns the driver linked to the caller, if any.
func GetDriverIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(c)
	if !ok || principal.DriverID == nil {
		return uuid.Nil, false
	}
	return *principal.DriverID, true
}
