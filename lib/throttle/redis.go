package throttle

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"ims-backend/models"
)

const redisTimeout = 250 * time.Millisecond

// First request of a window sets the TTL, the rest only increment.
const limiterScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

type redisLimiter struct {
	client *redis.Client
	script *redis.Script
	limits map[models.ThrottleScope]int
}

func NewRedisLimiter(client *redis.Client, limits map[models.ThrottleScope]int) Provider {
	return &redisLimiter{
		client: client,
		script: redis.NewScript(limiterScript),
		limits: limits,
	}
}

func (l *redisLimiter) Allow(userID string, scope models.ThrottleScope) (bool, time.Duration) {
	limit, ok := l.limits[scope]
	if !ok || limit <= 0 {
		return true, 0
	}
	key := bucketKey(userID, scope)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, dailyWindow.Milliseconds(), limit).Int64()
	if err != nil {
		// the quota is best-effort, an unreachable redis never blocks requests
		return true, 0
	}
	if allowed == 1 {
		return true, 0
	}
	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		return false, 0
	}
	return false, ttl
}
