package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "palu-board.backend/internal/domain/errors"
	"palu-board.backend/internal/interfaces/http/response"
	"palu-board.backend/pkg/logger"
	"palu-board.backend/pkg/redis"
	"palu-board.backend/pkg/utils"
)

var (
	redisIncr   = redis.Incr
	redisExpire = redis.Expire
	redisTTL    = redis.TTL
)

// LikeRateLimitMiddleware caps likes per client IP inside a rolling window.
// The counter lives in Redis under like_limit:<ip>; the first increment in a
// window arms the TTL. Redis outages fail open so likes keep working.
func LikeRateLimitMiddleware(max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("like_limit:%s", utils.ClientIP(c.Request))

		count, err := redisIncr(ctx, key)
		if err != nil {
			logger.Warn(ctx, "like rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			if err := redisExpire(ctx, key, window); err != nil {
				logger.Warn(ctx, "failed to arm rate limit window", zap.String("key", key), zap.Error(err))
			}
		}

		if count > int64(max) {
			// Tell the client when the window reopens.
			if ttl, err := redisTTL(ctx, key); err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl.Round(time.Second).Seconds())))
			}
			response.Error(c, domainerrors.TooManyRequests("Like limit reached, try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
