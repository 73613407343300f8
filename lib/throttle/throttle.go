package throttle

import (
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"ims-backend/models"
)

const dailyWindow = 24 * time.Hour

// Provider enforces per-user daily quotas keyed by a named scope.
// wait is the time until the active window resets; it is zero when the
// request is allowed.
type Provider interface {
	Allow(userID string, scope models.ThrottleScope) (allowed bool, wait time.Duration)
}

var Instance Provider

// NewHandler picks the Redis-backed limiter when a client is available,
// otherwise the in-process one.
func NewHandler(client *redis.Client, limits map[models.ThrottleScope]int) {
	if client != nil {
		Instance = NewRedisLimiter(client, limits)
		return
	}
	Instance = NewInMemoryLimiter(limits)
}

// Message returns the user-facing throttle message for a scope.
func Message(scope models.ThrottleScope, wait time.Duration) string {
	switch scope {
	case models.ThrottleScopeFeedback:
		return "You have reached the daily limit for submitting feedback. Please try again tomorrow."
	case models.ThrottleScopeJobApplication:
		return "You have reached the daily limit for job applications. Please try again tomorrow."
	}
	return fmt.Sprintf("Request was throttled. Expected available in %d seconds.", int64(wait.Seconds()))
}

type bucket struct {
	count     int
	windowEnd time.Time
}

type inMemoryLimiter struct {
	mu      sync.Mutex
	limits  map[models.ThrottleScope]int
	buckets map[string]*bucket
	now     func() time.Time
}

func NewInMemoryLimiter(limits map[models.ThrottleScope]int) Provider {
	return &inMemoryLimiter{
		limits:  limits,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (l *inMemoryLimiter) Allow(userID string, scope models.ThrottleScope) (bool, time.Duration) {
	limit, ok := l.limits[scope]
	if !ok || limit <= 0 {
		return true, 0
	}
	key := bucketKey(userID, scope)

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.After(b.windowEnd) {
		l.buckets[key] = &bucket{count: 1, windowEnd: now.Add(dailyWindow)}
		return true, 0
	}
	if b.count >= limit {
		wait := b.windowEnd.Sub(now)
		if wait < 0 {
			wait = 0
		}
		return false, wait
	}
	b.count++
	return true, 0
}

func bucketKey(userID string, scope models.ThrottleScope) string {
	return fmt.Sprintf("throttle:%s:%s", scope, userID)
}
