package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Hub pushes the same events as the SSE broker to dashboard websocket
// clients. Slow clients are dropped rather than allowed to block broadcasts.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]chan []byte
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dashboard is served from another origin in development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// ServeHTTP upgrades the connection and starts the client's write pump
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Websocket upgrade failed: %v", err)
		return
	}

	send := make(chan []byte, 16)
	h.mu.Lock()
	h.clients[conn] = send
	total := len(h.clients)
	h.mu.Unlock()
	log.Printf("WS Client connected. Total: %d", total)

	go h.writePump(conn, send)
	go h.readPump(conn)
}

// Publish sends an event to all connected clients
func (h *Hub) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal websocket event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.clients {
		select {
		case send <- data:
		default:
			// Client too slow; drop it
			delete(h.clients, conn)
			close(send)
			conn.Close()
		}
	}
}

// writePump drains the client's send channel and keeps the connection alive
func (h *Hub) writePump(conn *websocket.Conn, send chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, open := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.drop(conn)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(conn)
				return
			}
		}
	}
}

// readPump discards client messages; the hub is push-only. It exists to
// notice closed connections.
func (h *Hub) readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(conn)
			return
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
		conn.Close()
		log.Printf("WS Client disconnected. Total: %d", len(h.clients))
	}
}
