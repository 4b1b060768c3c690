package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// replayLimit bounds the number of events buffered per channel for late
// subscribers. Instruction streams chunk into a few hundred deltas at most;
// beyond the limit the oldest deltas are dropped, which only costs part of
// the live typing effect — the guide and final document events are small in
// number and survive.
const replayLimit = 512

// ConnectionManager manages WebSocket connections, channel subscriptions
// and per-channel replay buffers. One instance per process.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// Replay buffers: channel → ordered events since channel open
	replay   map[string][][]byte
	replayMu sync.RWMutex

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed without a lock: all reads and writes happen on
// the single goroutine that owns the connection (HandleConnection's read
// loop and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a ConnectionManager.
func NewConnectionManager(writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		replay:       make(map[string][][]byte),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or errored — exit read loop.
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(c, &msg)
	}
}

// Broadcast appends an event to the channel's replay buffer and sends it to
// every subscribed connection.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.appendReplay(channel, event)

	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers, then release the lock before sending so
	// a slow write (up to writeTimeout) cannot stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "channel", channel, "error", err)
		}
	}
}

// CloseChannel drops a channel's replay buffer. Called when a generation
// reaches a terminal state and its history is no longer needed.
func (m *ConnectionManager) CloseChannel(channel string) {
	m.replayMu.Lock()
	delete(m.replay, channel)
	m.replayMu.Unlock()
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

func (m *ConnectionManager) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		m.subscribe(c, msg.Channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Replay everything published so far, in order, so late subscribers
		// don't miss the guide or the final document.
		for _, event := range m.snapshotReplay(msg.Channel) {
			if err := m.sendRaw(c, event); err != nil {
				slog.Warn("Failed to send replay event", "connection_id", c.ID, "error", err)
				return
			}
		}

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

func (m *ConnectionManager) subscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	c.subscriptions[channel] = true
}

func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

func (m *ConnectionManager) appendReplay(channel string, event []byte) {
	m.replayMu.Lock()
	buf := append(m.replay[channel], event)
	if len(buf) > replayLimit {
		buf = buf[len(buf)-replayLimit:]
	}
	m.replay[channel] = buf
	m.replayMu.Unlock()
}

func (m *ConnectionManager) snapshotReplay(channel string) [][]byte {
	m.replayMu.RLock()
	defer m.replayMu.RUnlock()
	buf := m.replay[channel]
	out := make([][]byte, len(buf))
	copy(out, buf)
	return out
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
