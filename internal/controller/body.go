package controller

import (
	"expert-session-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}
	return nil
}

// parseOptionalBody leaves out untouched when the request has no body.
func parseOptionalBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	return parseBody(ctx, out)
}
