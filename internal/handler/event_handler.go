package handler

import (
	"net/http"

	"gamecatalog/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

const clientBuffer = 16

// StreamEvents godoc
// @Summary      Subscribe to catalog changes
// @Description  Server-Sent Events stream. Each event names a collection that changed; clients re-read it in full.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	client := make(hub.Client, clientBuffer)
	h.hub.Subscribe(client)
	defer h.hub.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("catalog", string(msg))
			c.Writer.Flush()
		}
	}
}
