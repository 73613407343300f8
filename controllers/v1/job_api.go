package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	applicationhandler "ims-backend/lib/application"
	jobhandler "ims-backend/lib/job"
	statisticshandler "ims-backend/lib/statistics"
	"ims-backend/middleware"
	apimodels "ims-backend/models/api"
	jobapimodels "ims-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app fiber.Router) {
	controller := jobApiController{}
	app.Route("job", func(router fiber.Router) {
		// static segments go before the :id route
		router.Get("open", controller.listOpen)
		router.Post("list", middleware.AdminOrInterviewerRequired(), controller.list)
		router.Post("", middleware.AdminRoleRequired(), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AdminOrInterviewerRequired(), controller.get)
			idRoute.Put("", middleware.AdminRoleRequired(), controller.update)
			idRoute.Delete("", middleware.AdminRoleRequired(), controller.delete)
			idRoute.Get("statistics", middleware.AdminOrInterviewerRequired(), controller.statistics)
			idRoute.Get("applications", middleware.AdminOrInterviewerRequired(), controller.applications)
		})
	})
}

// @Summary Create
// @Tags Job
// @Description Create a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update
// @Tags Job
// @Description Update a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/job/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobhandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get by ID
// @Tags Job
// @Description Get a job posting by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/job/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job not found")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete
// @Tags Job
// @Description Delete a job posting and its applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/job/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List
// @Tags Job
// @Description List job postings with filters
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/list [post]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Open jobs
// @Tags Job
// @Description List open job postings, available to candidates
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/open [get]
func (c *jobApiController) listOpen(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.ListOpen()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list open jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Job statistics
// @Tags Job
// @Description Application pipeline statistics of one job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=statisticsapimodels.JobStatisticsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/job/{id}/statistics [get]
func (c *jobApiController) statistics(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := statisticshandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job not found")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Job applications
// @Tags Job
// @Description List applications submitted for one job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/applications [get]
func (c *jobApiController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.ListByJob(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list job applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
