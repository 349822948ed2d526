package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name           string
		database       func() bool
		cache          func() bool
		expectedStatus int
		expected       HealthResponse
	}{
		{name: "all up", database: up, cache: up, expectedStatus: http.StatusOK,
			expected: HealthResponse{Status: "ok", Database: "connected", Cache: "connected"}},
		{name: "cache disabled", database: up, expectedStatus: http.StatusOK,
			expected: HealthResponse{Status: "ok", Database: "connected", Cache: "disabled"}},
		{name: "cache down", database: up, cache: down, expectedStatus: http.StatusOK,
			expected: HealthResponse{Status: "ok", Database: "connected", Cache: "disconnected"}},
		{name: "database down", database: down, cache: up, expectedStatus: http.StatusServiceUnavailable,
			expected: HealthResponse{Status: "degraded", Database: "disconnected", Cache: "connected"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.database, tt.cache).Check)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			var got HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if got.Timestamp == "" {
				t.Error("expected a timestamp")
			}
			got.Timestamp = ""
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
