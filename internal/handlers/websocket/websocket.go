package websocket

import (
	"net/http"
	"time"

	"workshop-service/internal/pkg/response"
	ws "workshop-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Single-shop deployment on a trusted LAN; the office and mechanic
		// views connect from the same origin as the API.
		return true
	},
}

type WebSocketHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWebSocketHandler(hub *ws.Hub, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// HandleConnection upgrades a view connection and registers it with the hub.
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register <- client

	h.logger.Info("WebSocket client connected", zap.String("ip", c.ClientIP()))

	go client.WritePump()
	go client.ReadPump()
}

// GetStats returns connection statistics.
func (h *WebSocketHandler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"total_connections": h.hub.TotalClients(),
		"timestamp":         time.Now(),
	}
	response.Success(c, http.StatusOK, "WebSocket stats", stats)
}
