package controller

import (
	"expert-session-be/internal/dto"
	"expert-session-be/internal/pkg/serverutils"
	"expert-session-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExpertController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Match(ctx *fiber.Ctx) error
}

type expertController struct {
	expertService service.IExpertService
}

func NewExpertController(expertService service.IExpertService) IExpertController {
	return &expertController{
		expertService: expertService,
	}
}

func (c *expertController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/expert/v1")
	h.Get("", c.List)
	h.Post("match", c.Match)
	h.Get(":id", c.Show)
}

func (c *expertController) List(ctx *fiber.Ctx) error {
	var req dto.ListExpertsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.expertService.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list experts", res))
}

func (c *expertController) Show(ctx *fiber.Ctx) error {
	res, err := c.expertService.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show expert", res))
}

// Match may take several seconds while the model answers.
func (c *expertController) Match(ctx *fiber.Ctx) error {
	var req dto.MatchExpertsRequest
	if err := parseOptionalBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.expertService.Match(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success match experts", res))
}
