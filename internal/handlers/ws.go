package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user app served from the same origin as the API; CORS on the
	// REST routes is the real gate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks the SPA's open websocket connections and pushes a refresh hint
// whenever a resource kind mutates, so open views reload without polling.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// NotifyChanged broadcasts {"type":"refresh","resource":...} to every client.
// Failed connections are dropped; a broadcast never blocks a request handler
// for longer than the write deadline.
func (hub *Hub) NotifyChanged(resource string) {
	hub.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(hub.clients))
	for conn := range hub.clients {
		conns = append(conns, conn)
	}
	hub.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			hub.drop(conn)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":     "refresh",
			"resource": resource,
		})

		if err != nil {
			log.Printf("Failed to notify websocket client: %v", err)
			hub.drop(conn)
		}
	}
}

func (hub *Hub) add(conn *websocket.Conn) {
	hub.mu.Lock()
	hub.clients[conn] = true
	hub.mu.Unlock()
}

func (hub *Hub) drop(conn *websocket.Conn) {
	hub.mu.Lock()
	delete(hub.clients, conn)
	hub.mu.Unlock()

	conn.Close()
}

// readLoop discards inbound messages; the channel is server-to-client only.
func (hub *Hub) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(maxMessageSize)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.drop(conn)
			return
		}
	}
}

func (h *Handler) WebSocket(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)

	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}

	h.hub.add(conn)
	go h.hub.readLoop(conn)
}
