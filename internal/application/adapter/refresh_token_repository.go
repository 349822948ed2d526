package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenRepository tracks issued refresh tokens so logout and rotation can revoke them.
type RefreshTokenRepository interface {
	// Save records a newly issued token and prunes the expired tokens of the same user.
	Save(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsActive reports whether the token was issued, is unexpired and was not revoked.
	IsActive(ctx context.Context, token string) (bool, error)

	Revoke(ctx context.Context, token string) error
}
