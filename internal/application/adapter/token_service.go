// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// TokenPair is issued on login and on every refresh.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// TokenClaims is what a verified token says about its user.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.UserRole
	DriverID  *uuid.UUID
	ExpiresAt time.Time
}

// TokenService signs and verifies session tokens. Refresh tokens are also tracked server side
// so they can be revoked before they expire.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	// IsRefreshTokenActive reports false for revoked, expired or unknown tokens.
	IsRefreshTokenActive(ctx context.Context, token string) (bool, error)
}
