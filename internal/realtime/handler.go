package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Màn hình quầy chạy trên LAN của quán, origin không cố định
	CheckOrigin: func(r *http.Request) bool { return true },
}

func ServeWS(hub *Hub, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("realtime.ws")
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("upgrade websocket thất bại", zap.Error(err))
			return
		}

		client := &Client{hub: hub, conn: conn, send: make(chan []byte, 16)}
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}
