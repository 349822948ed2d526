package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateUserInput represents the input for user creation by an admin.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.UserRole
	DriverID *uuid.UUID // Required for driver accounts
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user creation logic.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	driverRepo      adapter.DriverRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	driverRepo adapter.DriverRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		driverRepo:      driverRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if email == "" || name == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email, name and password are required",
			nil,
		)
	}

	// Validate email format
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if input.Role != entity.UserRoleAdmin && input.Role != entity.UserRoleDriver {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			"role must be 'admin' or 'driver'",
			domainerror.ErrInvalidRole,
		)
	}

	driverID := input.DriverID
	if input.Role == entity.UserRoleDriver {
		if driverID == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeDriverLinkRequired,
				"driver users must reference a driver",
				domainerror.ErrDriverLinkRequired,
			)
		}
		if _, err := uc.driverRepo.FindByID(ctx, *driverID); err != nil {
			if errors.Is(err, domainerror.ErrDriverNotFound) {
				return nil, domainerror.NewFleetError(domainerror.ErrCodeDriverNotFound, "driver not found", domainerror.ErrDriverNotFound)
			}
			return nil, fmt.Errorf("failed to find driver: %w", err)
		}
	} else {
		driverID = nil
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, name, passwordHash, input.Role, driverID)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already registered", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{
		User: user,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
