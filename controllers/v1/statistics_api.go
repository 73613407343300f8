package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	statisticshandler "ims-backend/lib/statistics"
	"ims-backend/middleware"
	apimodels "ims-backend/models/api"
)

type statisticsApiController struct {
	controllers.BaseAPIController
}

func InitStatisticsApiRouters(app fiber.Router) {
	controller := statisticsApiController{}
	app.Route("statistics", func(router fiber.Router) {
		router.Use(middleware.AdminOrInterviewerRequired())
		router.Get("", controller.list)
		router.Get("export", controller.export)
	})
}

// @Summary Statistics
// @Tags Statistics
// @Description Application pipeline statistics for every job
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]statisticsapimodels.JobStatisticsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/statistics [get]
func (c *statisticsApiController) list(ctx *fiber.Ctx) error {
	resp, err := statisticshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export statistics
// @Tags Statistics
// @Description Download the statistics table as xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/statistics/export [get]
func (c *statisticsApiController) export(ctx *fiber.Ctx) error {
	buf, err := statisticshandler.Instance.Export()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export statistics")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="job_statistics.xlsx"`)
	return ctx.Send(buf.Bytes())
}
