package controller

import (
	"expert-session-be/internal/dto"
	"expert-session-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IRoleController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type roleController struct{}

func NewRoleController() IRoleController {
	return &roleController{}
}

func (c *roleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/role/v1")
	h.Get("", c.Show)
	h.Post("toggle", c.Toggle)
}

func (c *roleController) Show(ctx *fiber.Ctx) error {
	role := serverutils.RoleFromCtx(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Success get role", dto.RoleResponse{Role: string(role)}))
}

// Toggle is stateless: the caller keeps the returned role and sends it back
// in the X-User-Role header.
func (c *roleController) Toggle(ctx *fiber.Ctx) error {
	role := serverutils.RoleFromCtx(ctx).Toggle()
	ctx.Set(serverutils.RoleHeader, string(role))
	return ctx.JSON(serverutils.SuccessResponse("Success toggle role", dto.RoleResponse{Role: string(role)}))
}
