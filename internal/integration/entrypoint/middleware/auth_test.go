package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

type stubTokenService struct {
	claims map[string]*adapter.TokenClaims
}

func (s *stubTokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if claims, ok := s.claims[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func (s *stubTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	return nil
}

func (s *stubTokenService) IsRefreshTokenActive(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func newTestEngine(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	ok := func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	}

	api := engine.Group("/api", m.Authenticate())
	api.GET("/any", ok)
	api.GET("/admin", m.RequireRole(entity.UserRoleAdmin), ok)
	api.GET("/me", m.RequireRole(entity.UserRoleDriver), m.RequireDriver(), ok)
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	driverID := uuid.New()
	adminID := uuid.New()
	tokens := &stubTokenService{claims: map[string]*adapter.TokenClaims{
		"admin-token":    {UserID: adminID, Email: "admin@transportes.com", Role: entity.UserRoleAdmin},
		"driver-token":   {UserID: uuid.New(), Email: "joao@transportes.com", Role: entity.UserRoleDriver, DriverID: &driverID},
		"unlinked-token": {UserID: uuid.New(), Email: "ana@transportes.com", Role: entity.UserRoleDriver},
	}}
	engine := newTestEngine(NewAuthMiddleware(tokens))

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedCode   string
	}{
		{name: "missing header", path: "/api/any", expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH-030003"},
		{name: "not a bearer token", path: "/api/any", header: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH-030001"},
		{name: "unknown token", path: "/api/any", header: "Bearer nope", expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH-030001"},
		{name: "bearer without token", path: "/api/any", header: "Bearer  ", expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH-030001"},
		{name: "scheme is case insensitive", path: "/api/any", header: "bearer admin-token", expectedStatus: http.StatusOK},
		{name: "admin on admin route", path: "/api/admin", header: "Bearer admin-token", expectedStatus: http.StatusOK},
		{name: "driver on admin route", path: "/api/admin", header: "Bearer driver-token", expectedStatus: http.StatusForbidden, expectedCode: "AUTH-040001"},
		{name: "driver on driver route", path: "/api/me", header: "Bearer driver-token", expectedStatus: http.StatusOK},
		{name: "admin on driver route", path: "/api/me", header: "Bearer admin-token", expectedStatus: http.StatusForbidden, expectedCode: "AUTH-040001"},
		{name: "driver account without driver link", path: "/api/me", header: "Bearer unlinked-token", expectedStatus: http.StatusForbidden, expectedCode: "AUTH-040001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedCode == "" {
				return
			}
			var response dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, response.Code)
			}
		})
	}

	t.Run("stores the user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/any", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body["user_id"] != adminID.String() {
			t.Errorf("expected user id %s, got %s", adminID, body["user_id"])
		}
	})
}

func TestRequestIDFromAuthSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestIDFromContext(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		header := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(header); err != nil {
			t.Fatalf("expected generated uuid, got %q", header)
		}
		if w.Body.String() != header {
			t.Errorf("expected context id %q to match header, got %q", header, w.Body.String())
		}
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "req-123" {
			t.Errorf("expected req-123, got %q", got)
		}
	})
}
