package broadcast

import (
	"strings"
	"testing"
	"time"

	"babysensory/internal/events"
)

func TestNewBroadcaster(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)
	if b == nil {
		t.Fatal("NewBroadcaster() returned nil")
	}
}

func TestBroadcaster_SubscribeUnsubscribe(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()
	if ch == nil {
		t.Fatal("Subscribe() returned nil")
	}

	b.Mu.Lock()
	if len(b.Clients) != 1 {
		t.Errorf("clients count = %d, want 1", len(b.Clients))
	}
	b.Mu.Unlock()

	b.Unsubscribe(ch)

	b.Mu.Lock()
	if len(b.Clients) != 0 {
		t.Errorf("clients count after unsubscribe = %d, want 0", len(b.Clients))
	}
	b.Mu.Unlock()
}

func TestBroadcaster_Broadcast(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.Broadcast("milestone", events.MilestoneEvent{Value: 50})

	for _, ch := range []chan EventMessage{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Event != "milestone" {
				t.Errorf("event = %q, want milestone", msg.Event)
			}
			if !strings.Contains(msg.Data, "50") {
				t.Errorf("data = %q, want milestone value", msg.Data)
			}
		case <-time.After(1 * time.Second):
			t.Fatal("broadcast timed out")
		}
	}

	b.Unsubscribe(ch1)
	b.Unsubscribe(ch2)
}

func TestBroadcaster_RelaysBusEvents(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	bus.PublishTouch(events.TouchEvent{ObjectType: "bubble", ColorName: "Blue", Total: 1, Streak: 1})

	select {
	case msg := <-ch:
		if msg.Event != "touch" {
			t.Errorf("event = %q, want touch", msg.Event)
		}
		if !strings.Contains(msg.Data, "bubble") {
			t.Errorf("data = %q, want bubble payload", msg.Data)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("bus relay timed out")
	}
}

func TestBroadcaster_SkipsFullChannels(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Fill the channel buffer (capacity 10)
	for i := 0; i < 10; i++ {
		b.Broadcast("refresh", events.RefreshEvent{Seed: i})
	}

	// This should not block even though channel is full
	done := make(chan bool)
	go func() {
		b.Broadcast("refresh", events.RefreshEvent{Seed: 11})
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Broadcast blocked on full channel")
	}
}
