package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMiddlewareTestRouter(middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("allows exact origin match", func(t *testing.T) {
		router := newMiddlewareTestRouter(CORSMiddleware([]string{"http://localhost:3000"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the origin echoed", got)
		}
	})

	t.Run("allows wildcard prefix match", func(t *testing.T) {
		router := newMiddlewareTestRouter(CORSMiddleware([]string{"http://localhost:*"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the origin echoed", got)
		}
	})

	t.Run("rejects unknown origin", func(t *testing.T) {
		router := newMiddlewareTestRouter(CORSMiddleware([]string{"http://localhost:3000"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("handles preflight requests", func(t *testing.T) {
		router := newMiddlewareTestRouter(CORSMiddleware([]string{"http://localhost:3000"}))

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		// 1 request/minute: burst of 1, so the second request is rejected.
		router := newMiddlewareTestRouter(RateLimitMiddleware(1))

		first := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(first, req1)

		second := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(second, req2)

		if first.Code != http.StatusOK {
			t.Errorf("first request Status = %d, want %d", first.Code, http.StatusOK)
		}
		if second.Code != http.StatusTooManyRequests {
			t.Errorf("second request Status = %d, want %d", second.Code, http.StatusTooManyRequests)
		}
	})

	t.Run("disabled when budget is non-positive", func(t *testing.T) {
		router := newMiddlewareTestRouter(RateLimitMiddleware(0))

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/ping", nil)
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d Status = %d, want %d", i, w.Code, http.StatusOK)
			}
		}
	})
}
