package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/integration/entrypoint/controller"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
)

type staticTokenService struct {
	claims map[string]*adapter.TokenClaims
}

func (s *staticTokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *staticTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if claims, ok := s.claims[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func (s *staticTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *staticTokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	return nil
}

func (s *staticTokenService) IsRefreshTokenActive(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	driverID := uuid.New()
	tokens := &staticTokenService{claims: map[string]*adapter.TokenClaims{
		"driver-token": {UserID: uuid.New(), Role: entity.UserRoleDriver, DriverID: &driverID},
	}}
	r := NewRouter(Controllers{
		Health: controller.NewHealthController(func() bool { return true }, nil),
		Legacy: controller.NewLegacyLedgerController(nil, nil),
	}, nil, middleware.NewAuthMiddleware(tokens))
	return r.Setup("test")
}

func TestRouter_LegacyRoutes(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name           string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "incomes need a token", path: "/api/entradas", expectedStatus: http.StatusUnauthorized},
		{name: "drivers cannot read incomes", path: "/api/entradas", token: "driver-token", expectedStatus: http.StatusForbidden},
		{name: "drivers cannot read expenses", path: "/api/despesas", token: "driver-token", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path+"?freteId="+uuid.NewString(), nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRouter_Middleware(t *testing.T) {
	engine := newTestEngine(t)
	engine.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("tags responses with a request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("expected a request id header")
		}
	})

	t.Run("recovers from panics", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", w.Code)
		}
	})
}
