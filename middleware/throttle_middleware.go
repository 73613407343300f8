package middleware

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/lib/throttle"
	"ims-backend/models"
	apimodels "ims-backend/models/api"
)

// Throttled enforces the per-user daily quota of the scope; the 429 payload
// carries the scope message and the seconds until the window resets.
func Throttled(scope models.ThrottleScope) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if throttle.Instance == nil {
			return ctx.Next()
		}
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Next()
		}
		allowed, wait := throttle.Instance.Allow(userID, scope)
		if !allowed {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(apimodels.NewThrottledResponse(throttle.Message(scope, wait), int64(wait.Seconds())))
		}
		return ctx.Next()
	}
}
