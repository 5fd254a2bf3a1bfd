package realtime

import (
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"employee-portal/internal/domain"
)

// ClaimsFunc validates an access token issued by the external identity
// system and returns the claims it carries.
type ClaimsFunc func(token string) (*domain.AccessClaims, error)

// clientMessage is what connected dashboards may send upstream. The only
// supported action is re-authentication: a login swap in the same tab joins
// the new identity's channel and leaves the old one.
type clientMessage struct {
	Action string `json:"action"`
	Token  string `json:"token"`
}

// Upgrade gates the websocket route; non-upgrade requests get a 426.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler upgrades the connection, scopes it to a channel derived from the
// token's claims, and keeps membership until the socket drops. Admins join
// the broadcast channel; everyone else joins their own employee channel.
func (h *Hub) Handler(validate ClaimsFunc) fiber.Handler {
	return websocket.New(func(ws *websocket.Conn) {
		conn := newConn(ws)
		defer h.Unregister(conn)

		claims, err := validate(ws.Query("token"))
		if err != nil {
			_ = ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "invalid token"))
			return
		}
		h.Join(conn, channelFor(claims))

		go conn.writePump()

		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			_, message, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var msg clientMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				continue
			}
			if msg.Action == "auth" {
				claims, err := validate(msg.Token)
				if err != nil {
					if channel, ok := h.Channel(conn); ok {
						h.Leave(conn, channel)
					}
					continue
				}
				h.Join(conn, channelFor(claims))
			}
		}
	})
}

func channelFor(claims *domain.AccessClaims) string {
	if claims.IsAdmin() {
		return AdminChannel
	}
	return EmployeeChannel(claims.EmployeeID)
}
