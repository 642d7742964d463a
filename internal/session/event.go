package session

import (
	"time"

	"github.com/pixil98/go-adventure/internal/game"
)

type EventKind string

const (
	EventPlayerCreated  EventKind = "player.created"
	EventPlayerMoved    EventKind = "player.moved"
	EventItemTaken      EventKind = "item.taken"
	EventItemDropped    EventKind = "item.dropped"
	EventItemEaten      EventKind = "item.eaten"
	EventSessionExpired EventKind = "session.expired"
)

var actionEvents = map[game.Action]EventKind{
	game.ActionTake: EventItemTaken,
	game.ActionDrop: EventItemDropped,
	game.ActionEat:  EventItemEaten,
}

// Event records a successful change to a session's state.
type Event struct {
	Kind       EventKind `json:"kind"`
	Session    string    `json:"session"`
	Player     string    `json:"player,omitempty"`
	RoomId     int       `json:"room_id"`
	FromRoomId int       `json:"from_room_id,omitempty"`
	ItemId     int       `json:"item_id,omitempty"`
	Item       string    `json:"item,omitempty"`
	Time       time.Time `json:"time"`
}

// Publisher delivers session events to interested listeners.
type Publisher interface {
	Publish(Event) error
}
