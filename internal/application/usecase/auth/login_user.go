// Package auth holds the session and account use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

type LoginUserInput struct {
	Email    string
	Password string
}

// Session is returned by login and refresh.
type Session struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
	User            *entity.User
}

// LoginUserUseCase exchanges email and password for a token pair.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService

	decoyOnce sync.Once
	decoyHash string
}

func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute answers unknown emails and wrong passwords with the same error, after the same bcrypt work.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		_ = uc.passwordService.VerifyPassword(uc.decoy(), input.Password)
		slog.Info("Login rejected", "reason", "unknown email")
		return nil, invalidCredentials()
	case err != nil:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		slog.Info("Login rejected", "reason", "wrong password", "user_id", user.ID)
		return nil, invalidCredentials()
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

func (uc *LoginUserUseCase) decoy() string {
	uc.decoyOnce.Do(func() {
		uc.decoyHash, _ = uc.passwordService.HashPassword("decoy-password-0")
	})
	return uc.decoyHash
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
