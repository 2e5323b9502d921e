package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType classifies a reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to connected browsers.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
}

// ReloadServer manages WebSocket connections for live reload.
type ReloadServer struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewReloadServer creates a reload server.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // dev only
			},
		},
	}
}

// HandleWebSocket upgrades the request and holds the connection open.
func (rs *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := rs.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	rs.mu.Lock()
	rs.clients[conn] = true
	rs.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	rs.mu.Lock()
	delete(rs.clients, conn)
	rs.mu.Unlock()
	conn.Close()
}

// NotifyReload tells all clients to reload the page.
func (rs *ReloadServer) NotifyReload() {
	rs.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyError shows a build error on all clients.
func (rs *ReloadServer) NotifyError(msg string) {
	rs.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

// ClearError clears the error overlay on all clients.
func (rs *ReloadServer) ClearError() {
	rs.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// ClientCount returns the number of connected browsers.
func (rs *ReloadServer) ClientCount() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.clients)
}

func (rs *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	rs.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(rs.clients))
	for c := range rs.clients {
		conns = append(conns, c)
	}
	rs.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			rs.mu.Lock()
			delete(rs.clients, c)
			rs.mu.Unlock()
			c.Close()
		}
	}
}
