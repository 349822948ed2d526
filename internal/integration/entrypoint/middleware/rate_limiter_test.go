package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiters := map[string]*RateLimiter{
		"memory": NewRateLimiter("login", 2, time.Minute),
		"redis":  NewRedisRateLimiter(client, "login", 2, time.Minute),
	}

	for name, limiter := range limiters {
		t.Run(name, func(t *testing.T) {
			engine := gin.New()
			engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			send := func(ip string) *httptest.ResponseRecorder {
				req := httptest.NewRequest(http.MethodPost, "/login", nil)
				req.RemoteAddr = ip + ":1234"
				w := httptest.NewRecorder()
				engine.ServeHTTP(w, req)
				return w
			}

			for i := 0; i < 2; i++ {
				if w := send("10.0.0.1"); w.Code != http.StatusOK {
					t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
				}
			}

			w := send("10.0.0.1")
			if w.Code != http.StatusTooManyRequests {
				t.Fatalf("expected 429, got %d", w.Code)
			}
			if w.Header().Get("Retry-After") == "" {
				t.Error("expected Retry-After header")
			}

			if w := send("10.0.0.2"); w.Code != http.StatusOK {
				t.Errorf("expected other clients to pass, got %d", w.Code)
			}
		})
	}

	t.Run("redis window expires", func(t *testing.T) {
		limiter := NewRedisRateLimiter(client, "refresh", 1, time.Minute)
		engine := gin.New()
		engine.POST("/refresh", limiter.Middleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		send := func() int {
			req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			return w.Code
		}

		if code := send(); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := send(); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}

		server.FastForward(2 * time.Minute)

		if code := send(); code != http.StatusOK {
			t.Errorf("expected a new window after expiry, got %d", code)
		}
	})

	t.Run("falls open when redis is down", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
		t.Cleanup(func() { _ = broken.Close() })

		engine := gin.New()
		engine.POST("/login", NewRedisRateLimiter(broken, "login", 1, time.Minute).Middleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
			}
		}
	})
}
