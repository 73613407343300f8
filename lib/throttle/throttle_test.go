package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ims-backend/models"
)

func newTestLimiter(limits map[models.ThrottleScope]int) (*inMemoryLimiter, *time.Time) {
	current := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewInMemoryLimiter(limits).(*inMemoryLimiter)
	limiter.now = func() time.Time { return current }
	return limiter, &current
}

func TestAllowUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(map[models.ThrottleScope]int{
		models.ThrottleScopeFeedback: 3,
	})

	for n := 0; n < 3; n++ {
		allowed, wait := limiter.Allow("user-1", models.ThrottleScopeFeedback)
		assert.True(t, allowed, "request %d within the limit", n+1)
		assert.Zero(t, wait)
	}

	allowed, wait := limiter.Allow("user-1", models.ThrottleScopeFeedback)
	assert.False(t, allowed, "request over the limit must be throttled")
	assert.Equal(t, dailyWindow, wait)
}

func TestWindowReset(t *testing.T) {
	limiter, current := newTestLimiter(map[models.ThrottleScope]int{
		models.ThrottleScopeJobApplication: 1,
	})

	allowed, _ := limiter.Allow("user-1", models.ThrottleScopeJobApplication)
	require.True(t, allowed)
	allowed, wait := limiter.Allow("user-1", models.ThrottleScopeJobApplication)
	require.False(t, allowed)
	assert.Equal(t, dailyWindow, wait)

	*current = current.Add(dailyWindow + time.Minute)
	allowed, wait = limiter.Allow("user-1", models.ThrottleScopeJobApplication)
	assert.True(t, allowed, "a new day opens a fresh window")
	assert.Zero(t, wait)
}

func TestScopesAndUsersAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(map[models.ThrottleScope]int{
		models.ThrottleScopeFeedback:       1,
		models.ThrottleScopeJobApplication: 1,
	})

	allowed, _ := limiter.Allow("user-1", models.ThrottleScopeFeedback)
	require.True(t, allowed)
	allowed, _ = limiter.Allow("user-1", models.ThrottleScopeFeedback)
	require.False(t, allowed)

	allowed, _ = limiter.Allow("user-1", models.ThrottleScopeJobApplication)
	assert.True(t, allowed, "other scope has its own bucket")
	allowed, _ = limiter.Allow("user-2", models.ThrottleScopeFeedback)
	assert.True(t, allowed, "other user has their own bucket")
}

func TestUnknownScopeIsUnlimited(t *testing.T) {
	limiter, _ := newTestLimiter(map[models.ThrottleScope]int{})

	for n := 0; n < 100; n++ {
		allowed, _ := limiter.Allow("user-1", models.ThrottleScopeFeedback)
		require.True(t, allowed)
	}
}

func TestScopeMessages(t *testing.T) {
	assert.Equal(t,
		"You have reached the daily limit for submitting feedback. Please try again tomorrow.",
		Message(models.ThrottleScopeFeedback, time.Hour))
	assert.Equal(t,
		"You have reached the daily limit for job applications. Please try again tomorrow.",
		Message(models.ThrottleScopeJobApplication, time.Hour))
	assert.Equal(t,
		"Request was throttled. Expected available in 3600 seconds.",
		Message(models.ThrottleScope("unknown"), time.Hour))
}
