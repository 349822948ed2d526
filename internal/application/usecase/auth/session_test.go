package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// fakeTokenService issues sequential tokens and tracks which refresh tokens are active.
type fakeTokenService struct {
	issued int
	owners map[string]uuid.UUID
	active map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{owners: map[string]uuid.UUID{}, active: map[string]bool{}}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	s.issued++
	refresh := fmt.Sprintf("refresh-%d", s.issued)
	s.owners[refresh] = user.ID
	s.active[refresh] = true
	return &adapter.TokenPair{
		AccessToken:     fmt.Sprintf("access-%d", s.issued),
		RefreshToken:    refresh,
		AccessExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	userID, ok := s.owners[token]
	if !ok {
		return nil, errors.New("malformed token")
	}
	return &adapter.TokenClaims{UserID: userID}, nil
}

func (s *fakeTokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	delete(s.active, token)
	return nil
}

func (s *fakeTokenService) IsRefreshTokenActive(ctx context.Context, token string) (bool, error) {
	return s.active[token], nil
}

func assertAuthCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != code {
		t.Errorf("expected code %s, got %s", code, authErr.Code)
	}
}

func TestSessionUseCases(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	admin := entity.NewUser("admin@transportes.com", "Administrador", "hashed:frete1234", entity.UserRoleAdmin, nil)
	_ = users.Create(ctx, admin)

	tokens := newFakeTokenService()
	login := NewLoginUserUseCase(users, fakePasswordService{}, tokens)
	refresh := NewRefreshTokenUseCase(users, tokens)
	logout := NewLogoutUserUseCase(tokens)

	t.Run("login normalizes the email", func(t *testing.T) {
		session, err := login.Execute(ctx, LoginUserInput{Email: "  Admin@Transportes.com ", Password: "frete1234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.User.ID != admin.ID || session.AccessToken == "" || session.AccessExpiresAt.IsZero() {
			t.Errorf("unexpected session %+v", session)
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, err := login.Execute(ctx, LoginUserInput{Email: "admin@transportes.com", Password: "errada123"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)

		_, err = login.Execute(ctx, LoginUserInput{Email: "ninguem@transportes.com", Password: "frete1234"})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("refresh rotates the token", func(t *testing.T) {
		session, err := login.Execute(ctx, LoginUserInput{Email: "admin@transportes.com", Password: "frete1234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rotated, err := refresh.Execute(ctx, session.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rotated.RefreshToken == session.RefreshToken {
			t.Error("expected a new refresh token")
		}

		_, err = refresh.Execute(ctx, session.RefreshToken)
		assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("malformed refresh token", func(t *testing.T) {
		_, err := refresh.Execute(ctx, "garbage")
		assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		session, err := login.Execute(ctx, LoginUserInput{Email: "admin@transportes.com", Password: "frete1234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		logout.Execute(ctx, session.RefreshToken)
		logout.Execute(ctx, "")

		_, err = refresh.Execute(ctx, session.RefreshToken)
		assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)
	})
}
