package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterRefills(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := NewRateLimiter(10*time.Second, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	// other clients have their own bucket
	assert.True(t, l.Allow("b"))

	now = now.Add(5 * time.Second)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestRateLimiterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(l *RateLimiter) []int {
		r := gin.New()
		r.POST("/api/chat", l.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })
		var codes []int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
			codes = append(codes, w.Code)
		}
		return codes
	}

	assert.Equal(t, []int{200, 200, 200}, serve(NewRateLimiter(time.Minute, 0)))
	assert.Equal(t, []int{200, 429, 429}, serve(NewRateLimiter(time.Minute, 1)))
}
