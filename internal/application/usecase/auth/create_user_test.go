package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

type fakeDriverRepo struct {
	drivers map[uuid.UUID]*entity.Driver
}

func (r *fakeDriverRepo) Create(ctx context.Context, driver *entity.Driver) error { return nil }

func (r *fakeDriverRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	if d, ok := r.drivers[id]; ok {
		return d, nil
	}
	return nil, domainerror.ErrDriverNotFound
}

func (r *fakeDriverRepo) FindAll(ctx context.Context) ([]*entity.Driver, error) { return nil, nil }

func (r *fakeDriverRepo) Update(ctx context.Context, driver *entity.Driver) error { return nil }

func (r *fakeDriverRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	driver := entity.NewDriver("Joao da Silva", "123.456.789-00", "")
	drivers := &fakeDriverRepo{drivers: map[uuid.UUID]*entity.Driver{driver.ID: driver}}
	missingDriver := uuid.New()

	t.Run("creates an admin", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewCreateUserUseCase(users, drivers, fakePasswordService{})

		output, err := uc.Execute(ctx, CreateUserInput{
			Email:    "  Admin@Transportes.com ",
			Name:     "Maria",
			Password: "SecurePass123!",
			Role:     entity.UserRoleAdmin,
			DriverID: &driver.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "admin@transportes.com" {
			t.Errorf("expected normalized email, got %q", output.User.Email)
		}
		if output.User.DriverID != nil {
			t.Error("expected admin to carry no driver link")
		}
		if output.User.PasswordHash != "hashed:SecurePass123!" {
			t.Errorf("expected hashed password, got %q", output.User.PasswordHash)
		}
	})

	t.Run("creates a driver user linked to a driver", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewCreateUserUseCase(users, drivers, fakePasswordService{})

		output, err := uc.Execute(ctx, CreateUserInput{
			Email:    "joao@transportes.com",
			Name:     "Joao",
			Password: "SecurePass123!",
			Role:     entity.UserRoleDriver,
			DriverID: &driver.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.DriverID == nil || *output.User.DriverID != driver.ID {
			t.Error("expected driver link to be kept")
		}
		if output.User.IsAdmin() {
			t.Error("expected driver role")
		}
	})

	authErrorCases := []struct {
		name         string
		input        CreateUserInput
		expectedCode domainerror.AuthErrorCode
	}{
		{
			name:         "missing fields",
			input:        CreateUserInput{Email: "a@b.com", Role: entity.UserRoleAdmin},
			expectedCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:         "invalid email",
			input:        CreateUserInput{Email: "not-an-email", Name: "X", Password: "SecurePass123!", Role: entity.UserRoleAdmin},
			expectedCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:         "unknown role",
			input:        CreateUserInput{Email: "a@b.com", Name: "X", Password: "SecurePass123!", Role: "owner"},
			expectedCode: domainerror.ErrCodeInvalidRole,
		},
		{
			name:         "driver without driver link",
			input:        CreateUserInput{Email: "a@b.com", Name: "X", Password: "SecurePass123!", Role: entity.UserRoleDriver},
			expectedCode: domainerror.ErrCodeDriverLinkRequired,
		},
		{
			name:         "weak password",
			input:        CreateUserInput{Email: "a@b.com", Name: "X", Password: "short", Role: entity.UserRoleAdmin},
			expectedCode: domainerror.ErrCodeWeakPassword,
		},
	}

	for _, tt := range authErrorCases {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateUserUseCase(newFakeUserRepo(), drivers, fakePasswordService{})

			_, err := uc.Execute(ctx, tt.input)

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if authErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, authErr.Code)
			}
		})
	}

	t.Run("unknown driver", func(t *testing.T) {
		uc := NewCreateUserUseCase(newFakeUserRepo(), drivers, fakePasswordService{})

		_, err := uc.Execute(ctx, CreateUserInput{
			Email:    "a@b.com",
			Name:     "X",
			Password: "SecurePass123!",
			Role:     entity.UserRoleDriver,
			DriverID: &missingDriver,
		})

		var fleetErr *domainerror.FleetError
		if !errors.As(err, &fleetErr) {
			t.Fatalf("expected FleetError, got %v", err)
		}
		if fleetErr.Code != domainerror.ErrCodeDriverNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDriverNotFound, fleetErr.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewCreateUserUseCase(users, drivers, fakePasswordService{})
		input := CreateUserInput{Email: "a@b.com", Name: "X", Password: "SecurePass123!", Role: entity.UserRoleAdmin}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, input)

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected email exists error, got %v", err)
		}
	})
}

func TestSeedAdminUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("skips without credentials", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewSeedAdminUseCase(users, fakePasswordService{})

		seeded, err := uc.Execute(ctx, SeedAdminInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seeded || len(users.users) != 0 {
			t.Error("expected nothing to be seeded")
		}
	})

	t.Run("seeds once", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewSeedAdminUseCase(users, fakePasswordService{})
		input := SeedAdminInput{Email: "admin@transportes.com", Password: "SecurePass123!"}

		seeded, err := uc.Execute(ctx, input)
		if err != nil || !seeded {
			t.Fatalf("expected first run to seed, got %v, %v", seeded, err)
		}
		seeded, err = uc.Execute(ctx, input)
		if err != nil || seeded {
			t.Fatalf("expected second run to skip, got %v, %v", seeded, err)
		}

		admin := users.users["admin@transportes.com"]
		if admin == nil || !admin.IsAdmin() {
			t.Errorf("expected seeded admin, got %+v", admin)
		}
	})
}
