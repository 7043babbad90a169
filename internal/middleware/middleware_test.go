package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"eventask/pkg/log"
)

func newTestRouter(m Middleware, trustedProxies ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		panic(err)
	}
	r.Use(m.RequestLogger(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 with a refill of one token per second.
	r := newTestRouter(New(log.NewNop(), 60))

	var limited int
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited == 0 {
		t.Fatal("expected some requests to be rate limited")
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), 0))
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), 0))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("request id = %q, want abc", got)
	}
}

func TestRateLimit_ForwardedHeaders(t *testing.T) {
	send := func(r *gin.Engine, remote, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("untrusted peer cannot rotate its key", func(t *testing.T) {
		// 10/min gives a burst of 1.
		r := newTestRouter(New(log.NewNop(), 10))
		if code := send(r, "203.0.113.7:1234", "1.1.1.1"); code != http.StatusOK {
			t.Fatalf("first request status = %d", code)
		}
		if code := send(r, "203.0.113.7:1234", "2.2.2.2"); code != http.StatusTooManyRequests {
			t.Errorf("rotated header status = %d, want 429", code)
		}
	})

	t.Run("trusted proxy forwards client addresses", func(t *testing.T) {
		r := newTestRouter(New(log.NewNop(), 10), "10.0.0.0/8")
		if code := send(r, "10.0.0.5:1234", "1.1.1.1"); code != http.StatusOK {
			t.Fatalf("first client status = %d", code)
		}
		if code := send(r, "10.0.0.5:1234", "2.2.2.2"); code != http.StatusOK {
			t.Errorf("second client status = %d, want 200", code)
		}
		if code := send(r, "10.0.0.5:1234", "1.1.1.1"); code != http.StatusTooManyRequests {
			t.Errorf("repeat client status = %d, want 429", code)
		}
	})
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	// 10/min gives a burst of 1: exactly one of many simultaneous first
	// requests from the same client may pass.
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.allow("198.51.100.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1", got)
	}
}
