package session

import "time"

type ManagerOpt func(*Manager)

func WithIdleTimeout(d time.Duration) ManagerOpt {
	return func(m *Manager) {
		m.idleTimeout = d
	}
}

func WithPublisher(pub Publisher) ManagerOpt {
	return func(m *Manager) {
		m.pub = pub
	}
}

func withClock(now func() time.Time) ManagerOpt {
	return func(m *Manager) {
		m.now = now
	}
}
