package websocket

import "github.com/gofiber/websocket/v2"

// ServeWs joins conn to the session room and blocks until the peer leaves.
func ServeWs(hub *Hub, conn *websocket.Conn, sessionId, userId string) {
	client := NewClient(hub, conn, sessionId, userId)
	hub.Register(client)

	go client.writePump()
	client.readPump()
}
