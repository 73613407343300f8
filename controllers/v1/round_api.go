package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	roundhandler "ims-backend/lib/round"
	"ims-backend/middleware"
	"ims-backend/models"
	apimodels "ims-backend/models/api"
	roundapimodels "ims-backend/models/api/round"
)

type roundApiController struct {
	controllers.BaseAPIController
}

func InitRoundApiRouters(app fiber.Router) {
	controller := roundApiController{}
	app.Route("round-template", func(router fiber.Router) {
		router.Use(middleware.AdminFullInterviewerReadOnly())
		router.Get("", controller.listTemplates)
		router.Post("", controller.createTemplate)
		router.Delete(":id", controller.deleteTemplate)
	})
	app.Route("round", func(router fiber.Router) {
		router.Get("my-interviews", middleware.InterviewerRoleRequired(), controller.myInterviews)
		router.Get("upcoming", middleware.AdminOrInterviewerRequired(), controller.upcoming)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AdminOrInterviewerRequired(), controller.get)
			idRoute.Put("", middleware.AdminRoleRequired(), controller.update)
			idRoute.Delete("", middleware.AdminRoleRequired(), controller.delete)
		})
	})
}

// @Summary Create round template
// @Tags Round
// @Description Create a reusable interview round template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 roundapimodels.RoundTemplateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/round-template [post]
func (c *roundApiController) createTemplate(ctx *fiber.Ctx) error {
	var payload roundapimodels.RoundTemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := roundhandler.Instance.CreateTemplate(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List round templates
// @Tags Round
// @Description List available interview round templates
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]roundapimodels.RoundTemplateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/round-template [get]
func (c *roundApiController) listTemplates(ctx *fiber.Ctx) error {
	resp, err := roundhandler.Instance.ListTemplates()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list round templates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete round template
// @Tags Round
// @Description Delete an interview round template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/round-template/{id} [delete]
func (c *roundApiController) deleteTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = roundhandler.Instance.DeleteTemplate(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete round template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get by ID
// @Tags Round
// @Description Get a scheduled round by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=roundapimodels.ApplicationRoundView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/round/{id} [get]
func (c *roundApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := roundhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview round not found")
	}
	if middleware.GetUserRole(ctx) == models.UserRoleInterviewer &&
		resp.InterviewerID != middleware.GetUserID(ctx) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update
// @Tags Round
// @Description Reschedule or reassign a scheduled round
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 roundapimodels.ScheduleRoundUpdateRequest	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/round/{id} [put]
func (c *roundApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload roundapimodels.ScheduleRoundUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = roundhandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update interview round")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete
// @Tags Round
// @Description Delete a scheduled round and its feedback
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/round/{id} [delete]
func (c *roundApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = roundhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete interview round")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upcoming interviews
// @Tags Round
// @Description Future rounds ordered by scheduled time; interviewers see their own only
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]roundapimodels.ApplicationRoundView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/round/upcoming [get]
func (c *roundApiController) upcoming(ctx *fiber.Ctx) error {
	interviewerID := ""
	if middleware.GetUserRole(ctx) == models.UserRoleInterviewer {
		interviewerID = middleware.GetUserID(ctx)
	}
	resp, err := roundhandler.Instance.ListUpcoming(interviewerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list upcoming interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary My interviews
// @Tags Round
// @Description Rounds assigned to the current interviewer
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]roundapimodels.ApplicationRoundView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/round/my-interviews [get]
func (c *roundApiController) myInterviews(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := roundhandler.Instance.ListByInterviewer(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
