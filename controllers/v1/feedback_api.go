package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	feedbackhandler "ims-backend/lib/feedback"
	"ims-backend/middleware"
	"ims-backend/models"
	apimodels "ims-backend/models/api"
	feedbackapimodels "ims-backend/models/api/feedback"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app fiber.Router) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
	})
	app.Post("round/:id/feedback",
		middleware.AdminOrInterviewerRequired(),
		middleware.Throttled(models.ThrottleScopeFeedback),
		controller.create)
}

// @Summary Submit feedback
// @Tags Feedback
// @Description Submit feedback for a conducted round; closes the application once every round is reviewed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 feedbackapimodels.FeedbackCreateRequest	true	"request body"
// @Param   id          		path    string  true	"round ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 429 {object} apimodels.ThrottledResponse
// @router /api/v1/round/{id}/feedback [post]
func (c *feedbackApiController) create(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload feedbackapimodels.FeedbackCreateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	// the override is the explicit staff flag, not the role
	recID, err := feedbackhandler.Instance.Create(id, userID, middleware.IsStaff(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary List
// @Tags Feedback
// @Description List feedback visible to the current role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 feedbackapimodels.FeedbackFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/list [post]
func (c *feedbackApiController) list(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FeedbackFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	resp, err := feedbackhandler.Instance.List(userID, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list feedback")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get by ID
// @Tags Feedback
// @Description Get one feedback record
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/feedback/{id} [get]
func (c *feedbackApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := feedbackhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "feedback not found")
	}
	if resp.ApplicationRoundDetails != nil {
		userID := middleware.GetUserID(ctx)
		switch middleware.GetUserRole(ctx) {
		case models.UserRoleInterviewer:
			if resp.ApplicationRoundDetails.InterviewerID != userID {
				return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
			}
		case models.UserRoleCandidate:
			details := resp.ApplicationRoundDetails.ApplicationDetails
			if details == nil || details.CandidateID != userID {
				return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
			}
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
