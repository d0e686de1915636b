package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palu-board.backend/pkg/logger"
	"palu-board.backend/pkg/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.NotEmpty(t, seen)
}

func TestRequestIDMiddleware_HonorsHeader(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", seen)
}

func TestCORSMiddleware_SetsHeaders(t *testing.T) {
	r := newRouter(CORSMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	r := newRouter(CORSMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	r := newRouter(RequestIDMiddleware(), LoggerMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping?x=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLikeRateLimit_BlocksAfterMax(t *testing.T) {
	srv := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))

	r := newRouter(LikeRateLimitMiddleware(3, 24*time.Hour))

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, post("203.0.113.7").Code)
	}
	w := post("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	// The 429 carries the remaining window so clients know when to retry.
	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Greater(t, retryAfter, 0)
	assert.LessOrEqual(t, retryAfter, int((24*time.Hour).Seconds()))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, post("198.51.100.23").Code)
}

func TestLikeRateLimit_WindowExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))

	r := newRouter(LikeRateLimitMiddleware(1, time.Hour))

	req := httptest.NewRequest("POST", "/ping", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	srv.FastForward(2 * time.Hour)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLikeRateLimit_FailsOpenWhenRedisDown(t *testing.T) {
	origIncr := redisIncr
	t.Cleanup(func() { redisIncr = origIncr })
	redisIncr = func(ctx context.Context, key string) (int64, error) {
		return 0, errors.New("connection refused")
	}

	r := newRouter(LikeRateLimitMiddleware(1, time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
