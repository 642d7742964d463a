package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-adventure/internal/session"
)

// EventSubjectPrefix prefixes the subject of every session event.
const EventSubjectPrefix = "adventure.events"

type publisher interface {
	Publish(subject string, data []byte) error
}

// EventPublisher publishes session events as JSON on
// adventure.events.<kind>.
type EventPublisher struct {
	server publisher
}

// NewEventPublisher wraps a NatsServer for session event delivery.
func NewEventPublisher(server *NatsServer) *EventPublisher {
	return &EventPublisher{server: server}
}

func (p *EventPublisher) Publish(ev session.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}
	return p.server.Publish(EventSubject(ev.Kind), data)
}

// EventSubject returns the subject events of the given kind are published on.
func EventSubject(kind session.EventKind) string {
	return fmt.Sprintf("%s.%s", EventSubjectPrefix, kind)
}
