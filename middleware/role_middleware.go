package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "ims-backend/lib/utils/auth-utils"
	"ims-backend/models"
	apimodels "ims-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			return stringName
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func IsStaff(ctx *fiber.Ctx) bool {
	claims := authutils.GetClaims(ctx)
	if staff, exist := claims["staff"]; exist {
		if boolStaff, ok := staff.(bool); ok {
			return boolStaff
		}
	}
	return false
}

func forbidden(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
}

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleAdmin {
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

func InterviewerRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleInterviewer {
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

func CandidateRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleCandidate {
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

func AdminOrInterviewerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if role != models.UserRoleAdmin && role != models.UserRoleInterviewer {
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

// AdminFullInterviewerReadOnly lets admins through unconditionally and
// interviewers only on safe methods.
func AdminFullInterviewerReadOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if role == models.UserRoleAdmin {
			return ctx.Next()
		}
		if role == models.UserRoleInterviewer &&
			(ctx.Method() == fiber.MethodGet || ctx.Method() == fiber.MethodHead) {
			return ctx.Next()
		}
		return forbidden(ctx)
	}
}
