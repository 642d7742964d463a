package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/game"
)

const DefaultIdleTimeout = 30 * time.Minute

// Manager keys sessions by identifier. The world it is given is the
// pristine template every new game is copied from and is never mutated.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	world       *game.World
	pub         Publisher
	idleTimeout time.Duration
	now         func() time.Time
}

func NewManager(world *game.World, opts ...ManagerOpt) *Manager {
	m := &Manager{
		sessions:    make(map[string]*Session),
		world:       world,
		idleTimeout: DefaultIdleTimeout,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// World returns the template world, for listing rooms before a game starts.
func (m *Manager) World() *game.World {
	return m.world
}

// Create starts a new session with a random identifier.
func (m *Manager) Create() *Session {
	s := &Session{
		id:           uuid.New().String(),
		template:     m.world,
		pub:          m.pub,
		lastActivity: m.now(),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	return s
}

// Get returns the session with the given identifier and marks it active.
// Returns nil if the session does not exist or has expired.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	s.touch(m.now())
	return s
}

// Remove ends a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Tick evicts sessions that have been idle longer than the idle timeout.
func (m *Manager) Tick(ctx context.Context) error {
	cutoff := m.now().Add(-m.idleTimeout)

	var expired []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.mu.Lock()
		s.publish(Event{Kind: EventSessionExpired})
		s.mu.Unlock()
	}

	if len(expired) > 0 {
		slog.InfoContext(ctx, "expired idle sessions", "count", len(expired))
	}
	return nil
}

// Start blocks until the context is canceled.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
