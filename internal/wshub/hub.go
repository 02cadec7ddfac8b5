package wshub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"
)

// ClientMessage is the JSON structure received from clients. Touches carry
// the object id; control messages carry only a type.
type ClientMessage struct {
	Type     string `json:"t"`
	ObjectID int    `json:"id,omitempty"`
}

// ServerMessage is the JSON structure sent to clients.
type ServerMessage struct {
	Type     string          `json:"t"`
	ObjectID int             `json:"id,omitempty"`
	Phase    string          `json:"ph,omitempty"`
	Value    int             `json:"v,omitempty"`
	Seed     int             `json:"s,omitempty"`
	Payload  json.RawMessage `json:"d,omitempty"`
}

// Client represents a single WebSocket connection in the hub.
type Client struct {
	ViewerID string
	Conn     *websocket.Conn
	Send     chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub manages the connected play screens and parent dashboards.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ViewerID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(viewerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[viewerID]; ok {
		close(c.Send)
		delete(h.clients, viewerID)
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every client. Non-blocking: drops if a
// client's channel is full.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}
