// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"net/http"
	"time"

	"zk-salon-api-server/internal/auth"
	"zk-salon-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Maximum wait for a message (or ping) from the client.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub *socket.Hub
}

// ServeWs upgrades an admin dashboard connection and keeps it registered in
// the hub until the client goes away. The JWT comes as a query parameter
// because browsers cannot set headers on websocket handshakes.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims := &auth.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return auth.JwtSecret, nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.S().Errorf("Failed to upgrade connection: %v", err)
		return
	}

	// One user can keep multiple dashboards open; key by connection.
	connID := claims.UserID + "-" + uuid.New().String()[:8]
	h.Hub.Register(connID, conn)

	defer func() {
		h.Hub.Unregister(connID)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	// A PING from the client extends the deadline; gorilla answers with PONG
	// on its own.
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.S().Warnf("Unexpected close error: %v", err)
			}
			break
		}
	}
}
