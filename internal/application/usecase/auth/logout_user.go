package auth

import (
	"context"
	"log/slog"

	"github.com/freight-manager/backend/internal/application/adapter"
)

// LogoutUserUseCase revokes the refresh token of the session being closed.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute always succeeds for the caller; an unknown or already revoked token is not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	if err := uc.tokenService.RevokeRefreshToken(ctx, refreshToken); err != nil {
		slog.Warn("Failed to revoke refresh token on logout", "error", err)
	}
}
