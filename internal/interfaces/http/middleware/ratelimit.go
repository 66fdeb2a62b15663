package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	sharedErrors "github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

const (
	rateLimitKeyPrefix = "subcore:ratelimit:"
	rateLimitTimeout   = 500 * time.Millisecond
)

// RateLimiter caps provisioning commands per operator and client IP with a
// Redis fixed-window counter shared by every instance.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int64
	window      time.Duration
	logger      logger.Interface
}

// NewRateLimiter rounds windows shorter than a second up to one second.
func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       int64(limit),
		window:      max(window, time.Second),
		logger:      logger,
	}
}

func (rl *RateLimiter) key(c *gin.Context, now time.Time) string {
	bucket := now.Unix() / int64(rl.window/time.Second)
	return rateLimitKeyPrefix + utils.OperatorFromContext(c) + ":" + c.ClientIP() + ":" + strconv.FormatInt(bucket, 10)
}

// hit counts one request in the current window. INCR and EXPIRE go out in
// one MULTI so a counter never outlives its window.
func (rl *RateLimiter) hit(ctx context.Context, key string) (int64, error) {
	var incr *redis.IntCmd
	_, err := rl.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rl.window+time.Second)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Limit lets requests through when Redis is unreachable.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(rl.window / time.Second))

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitTimeout)
		defer cancel()

		count, err := rl.hit(ctx, rl.key(c, time.Now()))
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if count > rl.limit {
			c.Header("Retry-After", retryAfter)
			utils.ErrorResponseWithError(c, sharedErrors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}
		c.Next()
	}
}
