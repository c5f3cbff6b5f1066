package controller

import (
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/internal/pkg/serverutils"
	"expert-session-be/internal/service"
	internalWS "expert-session-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ISessionRoomController interface {
	RegisterRoutes(r fiber.Router)
	Upgrade(ctx *fiber.Ctx) error
}

// sessionRoomController upgrades to a websocket that receives every chat
// message posted to the session.
type sessionRoomController struct {
	sessionService service.ISessionService
	hub            *internalWS.Hub
	logger         logger.ILogger
}

func NewSessionRoomController(sessionService service.ISessionService, hub *internalWS.Hub, log logger.ILogger) ISessionRoomController {
	return &sessionRoomController{
		sessionService: sessionService,
		hub:            hub,
		logger:         log,
	}
}

func (c *sessionRoomController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get(":id/ws", c.Upgrade, websocket.New(c.join))
}

// Upgrade rejects unknown sessions before the handshake and plain HTTP
// requests with 426.
func (c *sessionRoomController) Upgrade(ctx *fiber.Ctx) error {
	if _, err := c.sessionService.Show(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	return ctx.Next()
}

func (c *sessionRoomController) join(conn *websocket.Conn) {
	sessionId := conn.Params("id")
	userId, _ := conn.Locals(serverutils.LocalUserId).(string)

	c.logger.Debug("SESSION_ROOM", "Starting websocket session", map[string]interface{}{
		"session_id": sessionId,
		"user_id":    userId,
	})
	internalWS.ServeWs(c.hub, conn, sessionId, userId)
	c.logger.Debug("SESSION_ROOM", "Websocket session ended", map[string]interface{}{
		"session_id": sessionId,
		"user_id":    userId,
	})
}
