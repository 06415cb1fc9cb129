package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestRateLimitMiddleware(t *testing.T) {
	newRouter := func(ctx context.Context, rps float64, burst int) *gin.Engine {
		router := gin.New()
		router.Use(RateLimitMiddleware(ctx, rps, burst, discardLogger()))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return router
	}

	request := func(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = remoteAddr
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("AllowsBurst", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		router := newRouter(ctx, 1, 3)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusNoContent, request(router, "10.0.0.1:1234").Code)
		}
		w := request(router, "10.0.0.1:1234")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("LimitsArePerClient", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		router := newRouter(ctx, 0.001, 1)

		assert.Equal(t, http.StatusNoContent, request(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, request(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusNoContent, request(router, "10.0.0.2:1234").Code)
	})
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")

	store.evictIdle(time.Now().Add(time.Minute))

	_, ok := store.limiters.Load("10.0.0.1")
	assert.False(t, ok)
	_, ok = store.limiters.Load("10.0.0.2")
	assert.False(t, ok)

	store.getLimiter("10.0.0.3")
	store.evictIdle(time.Now().Add(-time.Minute))

	_, ok = store.limiters.Load("10.0.0.3")
	assert.True(t, ok)
}

func TestRateLimiterStore_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &rateLimiterStore{rps: 1, burst: 1}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		store.cleanupStale(ctx, time.Millisecond, time.Millisecond)
		close(done)
	}()

	cancel()
	<-done
}
