package server

import (
	"time"

	"expert-session-be/internal/bootstrap"

	"github.com/gofiber/fiber/v2"
)

// requestLogger wraps the error handler so the logged status is the rendered one.
func requestLogger(c *bootstrap.Container) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		c.Logger.Debug("HTTP", ctx.Method()+" "+ctx.Path(), map[string]interface{}{
			"status":     ctx.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
		})
		return err
	}
}
