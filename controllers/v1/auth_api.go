package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	accounthandler "ims-backend/lib/account"
	apimodels "ims-backend/models/api"
	accountapimodels "ims-backend/models/api/account"
	authapimodels "ims-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app fiber.Router) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
	})
}

// @Summary Registration
// @Tags Auth
// @Description Register a new user account
// @Param	body body	 accountapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload accountapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := accounthandler.Instance.Register(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Login
// @Tags Auth
// @Description Authenticate and receive a token pair
// @Param	body body	 authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := accounthandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Token refresh
// @Tags Auth
// @Description Exchange a refresh token for a new token pair
// @Param	body body	 authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := accounthandler.Instance.RefreshToken(payload.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
