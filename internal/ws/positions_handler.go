package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The live channel is open; any origin may subscribe.
		return true
	},
}

// PositionsHandler upgrades the connection and keeps it subscribed
// until the remote side closes or errors.
func PositionsHandler(hub *PositionHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := newPositionClient(hub, conn)
		hub.register <- client

		go client.writePump()
		client.readPump()
	}
}

func newPositionClient(hub *PositionHub, conn *websocket.Conn) *positionClient {
	return &positionClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		id:   uuid.NewString(),
	}
}
