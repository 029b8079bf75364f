package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/deepakkumar0818/foodify/events"
	"github.com/deepakkumar0818/foodify/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer; the socket accepts any caller.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AdminStream upgrades the connection and registers it with the event hub.
// The read loop exists only to detect the client going away.
func AdminStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}

	events.RegisterClient(conn)
	utils.InfoLogger.Printf("Admin stream connected: %s", c.ClientIP())

	defer func() {
		events.UnregisterClient(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
