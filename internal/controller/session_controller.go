package controller

import (
	"expert-session-be/internal/dto"
	"expert-session-be/internal/pkg/serverutils"
	"expert-session-be/internal/repository/memory"
	"expert-session-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Book(ctx *fiber.Ctx) error
	SampleTranscript(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("", c.List)
	h.Post("", c.Book)
	h.Get("transcript/sample", c.SampleTranscript)
	h.Get(":id", c.Show)
	h.Post(":id/summary", c.Summarize)
	h.Get(":id/messages", c.ListMessages)
	h.Post(":id/messages", c.SendMessage)
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	clientId := serverutils.UserIdFromCtx(ctx, memory.DemoClientId)

	res, err := c.sessionService.List(ctx.UserContext(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Book(ctx *fiber.Ctx) error {
	clientId := serverutils.UserIdFromCtx(ctx, memory.DemoClientId)

	var req dto.BookSessionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Book(ctx.UserContext(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success book session", res))
}

func (c *sessionController) SampleTranscript(ctx *fiber.Ctx) error {
	res := c.sessionService.SampleTranscript(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *sessionController) Summarize(ctx *fiber.Ctx) error {
	var req dto.GenerateSummaryRequest
	if err := parseOptionalBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Summarize(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate summary", res))
}

func (c *sessionController) ListMessages(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ListMessages(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list messages", res))
}

func (c *sessionController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	senderId := serverutils.UserIdFromCtx(ctx, "")
	res, err := c.sessionService.SendMessage(ctx.UserContext(), ctx.Params("id"), senderId, serverutils.RoleFromCtx(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success send message", res))
}
