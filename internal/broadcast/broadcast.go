// Package broadcast fans domain events out to server-sent event clients.
package broadcast

import (
	"encoding/json"
	"sync"

	"babysensory/internal/events"
)

// EventMessage is one SSE frame: the event name and a JSON payload.
type EventMessage struct {
	Event string
	Data  string
}

type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan EventMessage]bool
}

// NewBroadcaster drains the bus and relays each event to every subscriber.
func NewBroadcaster(bus *events.Bus) *Broadcaster {
	b := &Broadcaster{
		Clients: make(map[chan EventMessage]bool),
	}
	go func() {
		for ev := range bus.Touches {
			b.Broadcast("touch", ev)
		}
	}()
	go func() {
		for ev := range bus.Milestones {
			b.Broadcast("milestone", ev)
		}
	}()
	go func() {
		for ev := range bus.Refreshes {
			b.Broadcast("refresh", ev)
		}
	}()
	return b
}

func (b *Broadcaster) Subscribe() chan EventMessage {
	ch := make(chan EventMessage, 10)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan EventMessage) {
	b.Mu.Lock()
	delete(b.Clients, ch)
	b.Mu.Unlock()
	close(ch)
}

// Broadcast JSON-encodes the payload and offers it to every client.
func (b *Broadcaster) Broadcast(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- EventMessage{Event: event, Data: string(data)}:
		default:
			// skip clients with full data channels
		}
	}
}
