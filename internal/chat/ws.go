package chat

import (
	"net/http"
	"strings"

	"golang.org/x/net/websocket"
)

// wsInbound is what the widget sends over the socket.
type wsInbound struct {
	Type string `json:"type"` // "message", "ping"
	Text string `json:"text"`
}

// wsOutbound is what we send back.
type wsOutbound struct {
	Type string `json:"type"` // "reply", "pong", "error"
	Text string `json:"text,omitempty"`
}

// HandleWebSocket upgrades to WebSocket for real-time chat. The protocol
// is stateless like the HTTP endpoint: each "message" frame gets exactly
// one "reply" frame, with no transcript kept between frames.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	h.logger.Info("chat: websocket opened", "remote", r.RemoteAddr)

	for {
		var msg wsInbound
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("chat: websocket closed", "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, wsOutbound{Type: "pong"})
			continue
		}
		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		reply, err := h.service.HandleMessage(r.Context(), msg.Text)
		if err != nil {
			h.logger.Error("chat: websocket message failed", "error", err)
			_ = websocket.JSON.Send(conn, wsOutbound{
				Type: "error",
				Text: "Sorry, I encountered an internal error. Please try again later.",
			})
			continue
		}
		_ = websocket.JSON.Send(conn, wsOutbound{Type: "reply", Text: reply.Text})
	}
}
