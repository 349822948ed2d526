package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/freight-manager/backend/internal/application/adapter"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// RefreshTokenUseCase rotates a refresh token: the presented token is revoked and a new pair issued.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

func NewRefreshTokenUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute reloads the user so role or driver changes reach the new tokens.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, invalidRefreshToken("invalid or expired refresh token")
	}

	active, err := uc.tokenService.IsRefreshTokenActive(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !active {
		slog.Warn("Revoked refresh token presented", "user_id", claims.UserID)
		return nil, invalidRefreshToken("refresh token has been revoked")
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user no longer exists", domainerror.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := uc.tokenService.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &Session{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt,
		User:            user,
	}, nil
}

func invalidRefreshToken(message string) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, message, domainerror.ErrInvalidToken)
}
