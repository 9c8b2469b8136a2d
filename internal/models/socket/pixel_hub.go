package socket

import (
	"sync"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
)

// PixelConn is the subset of *websocket.Conn methods the hub needs. Keeping
// it an interface lets tests register fake connections.
type PixelConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Connection is one live viewer session. The ID is opaque and unique per
// session; IsModerator decides whether fan-out payloads carry the actor's
// discord id.
type Connection struct {
	ID          string
	IsModerator bool
	Conn        PixelConn
}

// PixelSocketHub is the registry of live viewer connections. It is constructed
// once at process start and injected where connections are accepted and where
// placements are broadcast; there is no package-level instance.
type PixelSocketHub struct {
	mu          sync.Mutex
	connections map[string]*Connection
}

func NewPixelSocketHub() *PixelSocketHub {
	return &PixelSocketHub{
		connections: make(map[string]*Connection),
	}
}

func (hub *PixelSocketHub) Register(conn *Connection) error {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if _, ok := hub.connections[conn.ID]; ok {
		return errs.ErrDuplicateConnection
	}
	hub.connections[conn.ID] = conn
	return nil
}

// Unregister is idempotent; removing an unknown id is a no-op.
func (hub *PixelSocketHub) Unregister(id string) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.connections, id)
}

// Snapshot copies the connection list so callers can send without holding the
// hub lock. A slow peer must never block registration or other sends.
func (hub *PixelSocketHub) Snapshot() []*Connection {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	connections := make([]*Connection, 0, len(hub.connections))
	for _, conn := range hub.connections {
		connections = append(connections, conn)
	}
	return connections
}

func (hub *PixelSocketHub) Len() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.connections)
}

// CloseAll tears down every connection, used on server shutdown.
func (hub *PixelSocketHub) CloseAll() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for id, conn := range hub.connections {
		if err := conn.Conn.Close(); err != nil {
			continue
		}
		delete(hub.connections, id)
	}
}
