package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func limited(rl *RateLimiter) http.Handler {
	return Chain(ClientIP(false), rl.Limit())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(h http.Handler, remote string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = remote
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, time.Minute)
	defer rl.Stop()
	h := limited(rl)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()
	h := limited(rl)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234").Code)
	}

	rec := hit(h, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "12", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_PortDoesNotSplitClient(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	h := limited(rl)

	hit(h, "1.1.1.1:1000")
	hit(h, "1.1.1.1:2000")
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "1.1.1.1:3000").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	h := limited(rl)

	hit(h, "1.1.1.1:1234")
	hit(h, "1.1.1.1:1234")
	assert.Equal(t, http.StatusOK, hit(h, "2.2.2.2:5678").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	t.Parallel()

	// 60 per minute = 1 per second
	rl := NewRateLimiter(60, time.Minute)
	defer rl.Stop()
	h := limited(rl)

	for i := 0; i < 60; i++ {
		hit(h, "3.3.3.3:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "3.3.3.3:1234").Code)

	time.Sleep(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1234").Code)
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()

	rl.limiter("old")
	rl.limiter("fresh")
	rl.mu.Lock()
	rl.limiters["old"].lastSeen = time.Now().Add(-2 * idleLimiterTTL)
	rl.mu.Unlock()

	rl.evictIdle(time.Now())

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "old")
	assert.Contains(t, rl.limiters, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
