package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	accounthandler "ims-backend/lib/account"
	"ims-backend/middleware"
	apimodels "ims-backend/models/api"
)

type accountApiController struct {
	controllers.BaseAPIController
}

func InitAccountApiRouters(app fiber.Router) {
	controller := accountApiController{}
	app.Route("account", func(router fiber.Router) {
		router.Get("profile", controller.profile)
		router.Get("user/:id", middleware.AdminRoleRequired(), controller.get)
	})
}

// @Summary Profile
// @Tags Account
// @Description Current user profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=accountapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/account/profile [get]
func (c *accountApiController) profile(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := accounthandler.Instance.GetByID(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get by ID
// @Tags Account
// @Description Get a user account by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=accountapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/account/user/{id} [get]
func (c *accountApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := accounthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user not found")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
