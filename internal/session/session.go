package session

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
)

var (
	ErrNoPlayer     = errors.New("no player in this session")
	ErrNameRequired = errors.New("player name is required")
)

// Session owns one player and the copy of the world that player lives in.
// All access goes through its methods, which serialize on the session lock.
type Session struct {
	mu sync.Mutex

	id       string
	template *game.World
	pub      Publisher

	world  *game.World
	player *game.Player

	messages     []string
	lastActivity time.Time
}

func (s *Session) ID() string {
	return s.id
}

// NewPlayer starts a new game for the session. The player gets a fresh copy
// of the world, replacing any previous player.
func (s *Session) NewPlayer(name string, roomId int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	world := s.template.Clone()
	p, err := game.NewPlayer(name, world, roomId)
	if err != nil {
		return err
	}
	s.world = world
	s.player = p

	s.publish(Event{Kind: EventPlayerCreated, RoomId: roomId})
	return nil
}

// HasPlayer reports whether a player has been created.
func (s *Session) HasPlayer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil
}

// RoomId returns the ID of the player's current room.
func (s *Session) RoomId() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return 0, ErrNoPlayer
	}
	return s.player.CurrentRoom().ID(), nil
}

// Do runs fn with the session's player while holding the session lock.
func (s *Session) Do(fn func(*game.Player) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return ErrNoPlayer
	}
	return fn(s.player)
}

// Move moves the player and returns the room they end up in.
func (s *Session) Move(direction string) (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return nil, ErrNoPlayer
	}

	from := s.player.CurrentRoom().ID()
	if err := s.player.Move(direction); err != nil {
		return nil, err
	}
	to := s.player.CurrentRoom()

	s.publish(Event{Kind: EventPlayerMoved, RoomId: to.ID(), FromRoomId: from})
	return to, nil
}

// Perform applies an item action and returns the item acted on.
func (s *Session) Perform(a game.Action, itemId int) (*game.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return nil, ErrNoPlayer
	}

	it, err := s.player.Perform(a, itemId)
	if err != nil {
		return nil, err
	}

	s.publish(Event{
		Kind:   actionEvents[a],
		RoomId: s.player.CurrentRoom().ID(),
		ItemId: it.ID,
		Item:   it.Name,
	})
	return it, nil
}

// AddMessage queues a message to show the player on their next view.
func (s *Session) AddMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// TakeMessages returns and clears the queued messages.
func (s *Session) TakeMessages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.messages
	s.messages = nil
	return msgs
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// publish must be called with the session lock held.
func (s *Session) publish(ev Event) {
	if s.pub == nil {
		return
	}
	ev.Session = s.id
	if s.player != nil {
		ev.Player = s.player.Name()
	}
	ev.Time = time.Now()
	if err := s.pub.Publish(ev); err != nil {
		slog.Warn("publishing session event", "kind", ev.Kind, "session", s.id, "error", err)
	}
}
