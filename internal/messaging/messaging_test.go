package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-testutil"
)

type fakeBus struct {
	ready      chan struct{}
	subscribed chan struct{}
	subject    string
	handler    func(string, []byte)
	messages   map[string][]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		ready:      make(chan struct{}),
		subscribed: make(chan struct{}),
		messages:   map[string][]byte{},
	}
}

func (b *fakeBus) Publish(subject string, data []byte) error {
	b.messages[subject] = data
	return nil
}

func (b *fakeBus) Ready() <-chan struct{} {
	return b.ready
}

func (b *fakeBus) Subscribe(subject string, handler func(string, []byte)) (func(), error) {
	b.subject = subject
	b.handler = handler
	close(b.subscribed)
	return func() {}, nil
}

func TestEventPublisher_Publish(t *testing.T) {
	bus := newFakeBus()
	p := &EventPublisher{server: bus}

	err := p.Publish(session.Event{
		Kind:    session.EventItemTaken,
		Session: "abc",
		Player:  "Ada",
		RoomId:  1,
		ItemId:  11,
		Item:    "apple",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := bus.messages["adventure.events.item.taken"]
	if !ok {
		t.Fatalf("no message on expected subject, got %v", bus.messages)
	}

	var ev session.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "item", ev.Item, "apple")
	testutil.AssertEqual(t, "session", ev.Session, "abc")
}

func TestActivityLog_Start(t *testing.T) {
	bus := newFakeBus()
	a := &ActivityLog{server: bus}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- a.Start(ctx) }()

	close(bus.ready)
	select {
	case <-bus.subscribed:
	case <-time.After(time.Second):
		t.Fatal("activity log did not subscribe")
	}
	testutil.AssertEqual(t, "subject", bus.subject, "adventure.events.>")

	cancel()
	if err := <-done; err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
