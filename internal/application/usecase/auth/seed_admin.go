package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// SeedAdminInput holds the credentials of the first admin account.
type SeedAdminInput struct {
	Email    string
	Password string
}

// SeedAdminUseCase creates the first admin on an empty installation.
type SeedAdminUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewSeedAdminUseCase creates a new SeedAdminUseCase instance.
func NewSeedAdminUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *SeedAdminUseCase {
	return &SeedAdminUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute creates the admin unless the email is already registered or no credentials are set.
// It reports whether a user was created.
func (uc *SeedAdminUseCase) Execute(ctx context.Context, input SeedAdminInput) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return false, nil
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	if exists {
		return false, nil
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := entity.NewUser(email, "Administrador", passwordHash, entity.UserRoleAdmin, nil)
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	return true, nil
}
