package fiberlog

import (
	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

// FuncTag resolves one log field from the request context.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderXRequestID)
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
