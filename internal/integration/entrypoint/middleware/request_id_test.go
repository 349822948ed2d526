package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestIDFromContext(c))
	})

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "keeps the caller's id", incoming: "req-42"},
		{name: "generates an id when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			header := w.Header().Get(RequestIDHeader)
			if header != w.Body.String() {
				t.Errorf("header %q differs from context value %q", header, w.Body.String())
			}
			if tt.incoming != "" && header != tt.incoming {
				t.Errorf("expected %q, got %q", tt.incoming, header)
			}
			if tt.incoming == "" {
				if _, err := uuid.Parse(header); err != nil {
					t.Errorf("expected a generated uuid, got %q", header)
				}
			}
		})
	}
}
