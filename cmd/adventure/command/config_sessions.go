package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-errors"
)

type SessionsConfig struct {
	IdleTimeout string `json:"idle_timeout,omitempty"`
	CookieName  string `json:"cookie_name,omitempty"`
}

func (c *SessionsConfig) validate() error {
	el := errors.NewErrorList()

	if c.IdleTimeout != "" {
		d, err := time.ParseDuration(c.IdleTimeout)
		if err != nil {
			el.Add(fmt.Errorf("sessions: parsing idle_timeout: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("sessions: idle_timeout must be positive"))
		}
	}

	return el.Err()
}

func (c *SessionsConfig) BuildManager(world *game.World, pub session.Publisher) (*session.Manager, error) {
	opts := []session.ManagerOpt{}
	if c.IdleTimeout != "" {
		d, err := time.ParseDuration(c.IdleTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing idle_timeout: %w", err)
		}
		opts = append(opts, session.WithIdleTimeout(d))
	}
	if pub != nil {
		opts = append(opts, session.WithPublisher(pub))
	}

	return session.NewManager(world, opts...), nil
}
