package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	apimodels "ims-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(hMsg))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
