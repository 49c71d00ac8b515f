package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"slotswapper/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Token bucket in Redis, evaluated atomically. KEYS[1] holds
// {tokens, last_refill_ms}; the script refills by elapsed time and consumes
// one token when available.
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local refill_tokens = tonumber(ARGV[2])
local refill_interval_ms = tonumber(ARGV[3])
local now_ms = tonumber(ARGV[4])
local ttl_ms = tonumber(ARGV[5])

local bucket = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(bucket[1])
local last_refill_ms = tonumber(bucket[2])

if tokens == nil then
	tokens = capacity
	last_refill_ms = now_ms
end

local elapsed = now_ms - last_refill_ms
if elapsed >= refill_interval_ms then
	local refills = math.floor(elapsed / refill_interval_ms)
	tokens = math.min(capacity, tokens + refills * refill_tokens)
	last_refill_ms = last_refill_ms + refills * refill_interval_ms
end

local allowed = 0
if tokens > 0 then
	tokens = tokens - 1
	allowed = 1
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill_ms)
redis.call('PEXPIRE', key, ttl_ms)
return allowed
`)

// RateLimitMiddleware throttles by client IP. A nil client or disabled config
// turns it into a pass-through so local setups run without Redis.
func RateLimitMiddleware(client *redis.Client, cfg config.RateLimitConfig) gin.HandlerFunc {
	if client == nil || !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", cfg.Prefix, c.ClientIP())
		now := time.Now().UnixMilli()

		allowed, err := rateLimitScript.Run(c.Request.Context(), client, []string{key},
			cfg.Capacity, cfg.RefillTokens, cfg.RefillInterval.Milliseconds(), now, cfg.TTL.Milliseconds(),
		).Int()
		if err != nil {
			// Redis being down should not take auth down with it.
			slog.Warn("rate limit check failed, allowing request", "error", err.Error())
			c.Next()
			return
		}

		if allowed == 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
