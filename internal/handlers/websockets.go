package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"roomsign/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMsgSize      = 1 << 12 // 4 KB
	defaultInterval = 5 * time.Second
	minInterval     = 1 * time.Second
	maxInterval     = 60 * time.Second
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. The admin preview page is same-origin, but
// signs never connect here, so a permissive origin check is acceptable.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConnect streams the display payload for one device to the admin live
// preview. The payload is recomputed every interval but only written when its
// content fingerprint changed — the same change-detection contract the signs
// use over polling.
func (h *Handler) wsConnect(c *gin.Context) {
	deviceID, _ := strconv.Atoi(c.DefaultQuery("device_id", "0"))
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send the first payload unconditionally so the preview renders at once.
	lastHash, err := h.sendPayload(c.Request.Context(), conn, deviceID, "")
	if err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err, "device_id", deviceID)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			lastHash, err = h.sendPayload(c.Request.Context(), conn, deviceID, lastHash)
			if err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err, "device_id", deviceID)
				}
				return
			}
		}
	}
}

// Helper: parseInterval reads ?interval=10s with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}
	return defaultInterval
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendPayload recomputes the payload and writes it when the fingerprint
// differs from lastHash. It returns the fingerprint now on the wire. A
// vanished resource is reported to the client instead of silently closing.
func (h *Handler) sendPayload(ctx context.Context, conn *websocket.Conn, deviceID int, lastHash string) (string, error) {
	payload, err := h.services.Display.GetDisplayData(ctx, deviceID, "")
	if err != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if errors.Is(err, service.ErrResourceNotFound) {
			_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: errNoResource})
		}
		return lastHash, err
	}
	if payload.ContentHash == lastHash {
		return lastHash, nil
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(wsEnvelope{Type: "display", Data: payload}); err != nil {
		return lastHash, err
	}
	return payload.ContentHash, nil
}
