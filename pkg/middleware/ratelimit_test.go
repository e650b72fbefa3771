package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterEvictsOnlyIdleClients(t *testing.T) {
	rl := NewRateLimiter(10, 3)

	active := rl.getLimiter("1.1.1.1")
	rl.getLimiter("2.2.2.2")

	// Backdate the second client past the idle window; the first stays
	// fresh because it was just touched.
	rl.mu.Lock()
	rl.visitors["2.2.2.2"].lastSeen = time.Now().Add(-visitorMaxIdle - time.Minute)
	rl.mu.Unlock()

	rl.evictIdle(visitorMaxIdle)

	rl.mu.Lock()
	_, activeKept := rl.visitors["1.1.1.1"]
	_, idleKept := rl.visitors["2.2.2.2"]
	rl.mu.Unlock()
	assert.True(t, activeKept)
	assert.False(t, idleKept)

	// The surviving entry still hands back the same limiter, so its
	// bucket state is preserved.
	assert.Same(t, active, rl.getLimiter("1.1.1.1"))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())

	rl := NewRateLimiter(1, 2)
	r.GET("/limited", rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "3.3.3.3:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
