package stream

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

func parseFilter(r *http.Request) Filter {
	q := r.URL.Query()
	var f Filter
	if types := q.Get(QueryParamTypes); types != "" {
		f.Types = strings.Split(types, ",")
	}
	f.PlayerID = q.Get(QueryParamPlayerID)
	return f
}

func connectedEvent(client *Client, f Filter) Event {
	return Event{
		ID:        client.ID,
		Type:      EventTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"client_id": client.ID,
			"filters":   f.Types,
			"player_id": f.PlayerID,
		},
	}
}

// SSEHandler returns an HTTP handler for server-sent event connections
func SSEHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		f := parseFilter(r)
		client := hub.Register(f)
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "transport", "sse", "filters", f.Types)
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", "sse")
		}()

		write := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(connectedEvent(client, f)) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !write(evt) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

// WSHandler returns an HTTP handler that streams events as websocket text frames
func WSHandler(hub *Hub) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied with an HTTP error
			slog.Debug(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		f := parseFilter(r)
		client := hub.Register(f)
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "transport", "websocket", "filters", f.Types)
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", "websocket")
		}()

		// The read loop only services control frames and notices disconnects.
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = conn.SetReadDeadline(time.Now().Add(PongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(PongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := writeJSON(conn, connectedEvent(client, f)); err != nil {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
						time.Now().Add(time.Second))
					return
				}
				if err := writeJSON(conn, evt); err != nil {
					slog.Warn(LogMsgWriteError, "error", err)
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, b)
}
