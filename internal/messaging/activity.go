package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/session"
)

type subscriber interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(subject string, data []byte)) (func(), error)
}

// ActivityLog subscribes to every session event and writes it to the log.
type ActivityLog struct {
	server subscriber
}

func NewActivityLog(server *NatsServer) *ActivityLog {
	return &ActivityLog{server: server}
}

func (a *ActivityLog) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-a.server.Ready():
	}

	unsub, err := a.server.Subscribe(EventSubjectPrefix+".>", func(subject string, data []byte) {
		a.handle(ctx, subject, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to session events: %w", err)
	}
	defer unsub()

	<-ctx.Done()
	return nil
}

func (a *ActivityLog) handle(ctx context.Context, subject string, data []byte) {
	var ev session.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		slog.WarnContext(ctx, "decoding session event", "subject", subject, "error", err)
		return
	}

	attrs := []any{"kind", ev.Kind, "session", ev.Session, "room", ev.RoomId}
	if ev.Player != "" {
		attrs = append(attrs, "player", ev.Player)
	}
	if ev.Item != "" {
		attrs = append(attrs, "item", ev.Item, "item_id", ev.ItemId)
	}
	slog.InfoContext(ctx, "session activity", attrs...)
}
