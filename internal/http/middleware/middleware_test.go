package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rps_game/internal/service"

	"github.com/gin-gonic/gin"
)

func TestSimpleRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", SimpleRateLimit("test", 2, time.Minute, ByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("status codes = %v; want [200 200 429]", codes)
	}
}

func TestLocalLimiterSweepsExpiredWindows(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newLocalLimiter(time.Minute)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	l.hit("a")
	l.hit("b")
	if n := l.size(); n != 2 {
		t.Fatalf("size = %d; want 2", n)
	}

	now = now.Add(2 * time.Minute)
	if got := l.hit("c"); got != 1 {
		t.Fatalf("hit(c) = %d; want 1", got)
	}
	if n := l.size(); n != 1 {
		t.Fatalf("size after sweep = %d; want 1", n)
	}
}

func TestLocalLimiterWindowResets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newLocalLimiter(time.Minute)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	r := gin.New()
	r.GET("/x", simpleRateLimit(l, "test", 1, ByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	if c := do(); c != http.StatusOK {
		t.Fatalf("first request = %d", c)
	}
	if c := do(); c != http.StatusTooManyRequests {
		t.Fatalf("second request = %d; want 429", c)
	}
	now = now.Add(61 * time.Second)
	if c := do(); c != http.StatusOK {
		t.Fatalf("request in new window = %d; want 200", c)
	}
}

func TestRateLimitFallsBackWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if RedisEnabled() {
		t.Skip("redis configured by another test")
	}

	r := gin.New()
	r.GET("/x", RateLimit("fallback", 1, time.Minute, ByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/x", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/x", nil))

	if first.Code != 200 || second.Code != http.StatusTooManyRequests {
		t.Fatalf("codes = %d, %d; want 200, 429", first.Code, second.Code)
	}
}

func TestSessionAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := service.InitJWT("mw-secret", time.Hour); err != nil {
		t.Fatalf("InitJWT: %v", err)
	}

	r := gin.New()
	r.GET("/me", SessionAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SessionIDKey))
	})

	token, _ := service.GenerateJWT("sess-1")

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("%s: status = %d; want %d", tc.name, w.Code, tc.code)
		}
		if tc.code == http.StatusOK && w.Body.String() != "sess-1" {
			t.Fatalf("%s: session id = %q", tc.name, w.Body.String())
		}
	}
}
