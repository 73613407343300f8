package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"ims-backend/controllers"
	applicationhandler "ims-backend/lib/application"
	filestoragehandler "ims-backend/lib/file-storage"
	roundhandler "ims-backend/lib/round"
	"ims-backend/middleware"
	"ims-backend/models"
	apimodels "ims-backend/models/api"
	applicationapimodels "ims-backend/models/api/application"
	roundapimodels "ims-backend/models/api/round"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app fiber.Router) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("",
			middleware.CandidateRoleRequired(),
			middleware.Throttled(models.ThrottleScopeJobApplication),
			controller.apply)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AdminOrInterviewerRequired(), controller.get)
			idRoute.Delete("", middleware.AdminRoleRequired(), controller.delete)
			idRoute.Put("status", middleware.AdminRoleRequired(), controller.updateStatus)
			idRoute.Put("select", middleware.AdminRoleRequired(), controller.selectCandidate)
			idRoute.Route("round", func(roundRoute fiber.Router) {
				roundRoute.Post("", middleware.AdminRoleRequired(), controller.scheduleRound)
				roundRoute.Get("", middleware.AdminOrInterviewerRequired(), controller.listRounds)
			})
			idRoute.Route("resume", func(resumeRoute fiber.Router) {
				resumeRoute.Post("", middleware.CandidateRoleRequired(), controller.uploadResume)
				resumeRoute.Get("", middleware.AdminOrInterviewerRequired(), controller.downloadResume)
			})
		})
	})
}

// @Summary Apply
// @Tags Application
// @Description Submit an application for a job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 429 {object} apimodels.ThrottledResponse
// @router /api/v1/application [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := middleware.GetUserID(ctx)
	id, err := applicationhandler.Instance.Apply(candidateID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List
// @Tags Application
// @Description List applications visible to the current role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	resp, err := applicationhandler.Instance.List(userID, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get by ID
// @Tags Application
// @Description Get an application by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application not found")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete
// @Tags Application
// @Description Delete an application with its rounds and feedback
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update status
// @Tags Application
// @Description Overwrite the application status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.StatusUpdateRequest	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/{id}/status [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.UpdateStatus(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update application status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Select candidate
// @Tags Application
// @Description Select the candidate and close all sibling applications of the job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/{id}/select [put]
func (c *applicationApiController) selectCandidate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.SelectCandidate(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to select candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Schedule round
// @Tags Application
// @Description Schedule an interview round for an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 roundapimodels.ScheduleRoundRequest	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/round [post]
func (c *applicationApiController) scheduleRound(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload roundapimodels.ScheduleRoundRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	roundID, err := roundhandler.Instance.Schedule(payload, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(roundID))
}

// @Summary Application rounds
// @Tags Application
// @Description List scheduled rounds of an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]roundapimodels.ApplicationRoundView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/round [get]
func (c *applicationApiController) listRounds(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := roundhandler.Instance.ListByApplication(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list rounds")
	}
	// interviewers see only the rounds assigned to them
	if middleware.GetUserRole(ctx) == models.UserRoleInterviewer {
		userID := middleware.GetUserID(ctx)
		own := make([]roundapimodels.ApplicationRoundView, 0, len(resp))
		for _, item := range resp {
			if item.InterviewerID == userID {
				own = append(own, item)
			}
		}
		resp = own
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload resume
// @Tags Application
// @Description Attach a resume file to an own application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Param   file				formData	file	true	"resume file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/resume [post]
func (c *applicationApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	application, err := applicationhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application not found")
	}
	if application.CandidateID != middleware.GetUserID(ctx) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("resume file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read resume file"))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read resume file"))
	}
	contentType := fileHeader.Header.Get("Content-Type")
	recID, err := filestoragehandler.Instance.UploadResume(ctx.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload resume")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Download resume
// @Tags Application
// @Description Download the resume attached to an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/{id}/resume [get]
func (c *applicationApiController) downloadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestoragehandler.Instance.DownloadResume(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume not found")
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	return ctx.SendStream(body)
}
