package websocket

import (
	"github.com/gin-gonic/gin"
)

// WSHandler serves GET /ws/:user_id?token=<jwt>.
// The token rides in the query string because browsers cannot set an
// Authorization header on a WebSocket upgrade.
func WSHandler(registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		token := c.Query("token")

		client, err := registry.Handshake(c.Writer, c.Request, userID, token)
		if err != nil {
			registry.logger.Warn("handshake_rejected",
				"user_id", userID,
				"remote_addr", c.ClientIP(),
				"error", err.Error(),
			)
			return
		}

		// the request goroutine owns the connection from here on
		registry.Serve(client)
	}
}
