package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ims-backend/models"
)

func gateStatus(t *testing.T, gate fiber.Handler, role models.UserRole, method string) int {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "user-1",
			"role": string(role),
		})
		ctx.Locals("user", token)
		return ctx.Next()
	})
	app.Add(method, "/guarded", gate, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(method, "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAdminRoleRequired(t *testing.T) {
	gate := AdminRoleRequired()
	assert.Equal(t, fiber.StatusOK, gateStatus(t, gate, models.UserRoleAdmin, fiber.MethodGet))
	assert.Equal(t, fiber.StatusForbidden, gateStatus(t, gate, models.UserRoleInterviewer, fiber.MethodGet))
	assert.Equal(t, fiber.StatusForbidden, gateStatus(t, gate, models.UserRoleCandidate, fiber.MethodGet))
}

func TestAdminOrInterviewerRequired(t *testing.T) {
	gate := AdminOrInterviewerRequired()
	assert.Equal(t, fiber.StatusOK, gateStatus(t, gate, models.UserRoleAdmin, fiber.MethodGet))
	assert.Equal(t, fiber.StatusOK, gateStatus(t, gate, models.UserRoleInterviewer, fiber.MethodGet))
	assert.Equal(t, fiber.StatusForbidden, gateStatus(t, gate, models.UserRoleCandidate, fiber.MethodGet))
}

func TestCandidateRoleRequired(t *testing.T) {
	gate := CandidateRoleRequired()
	assert.Equal(t, fiber.StatusOK, gateStatus(t, gate, models.UserRoleCandidate, fiber.MethodPost))
	assert.Equal(t, fiber.StatusForbidden, gateStatus(t, gate, models.UserRoleAdmin, fiber.MethodPost))
}

func TestAdminFullInterviewerReadOnly(t *testing.T) {
	gate := AdminFullInterviewerReadOnly()
	assert.Equal(t, fiber.StatusOK, gateStatus(t, gate, models.UserRoleAdmin, fiber.MethodPost))
	assert.Equal(t, fiber.StatusOK, gateStatus(t, gate, models.UserRoleInterviewer, fiber.MethodGet))
	assert.Equal(t, fiber.StatusForbidden, gateStatus(t, gate, models.UserRoleInterviewer, fiber.MethodPost))
	assert.Equal(t, fiber.StatusForbidden, gateStatus(t, gate, models.UserRoleCandidate, fiber.MethodGet))
}
