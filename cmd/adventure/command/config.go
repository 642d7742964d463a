package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string           `json:"tick_interval"`
	Listeners    []ListenerConfig `json:"listeners"`
	World        WorldConfig      `json:"world"`
	Sessions     SessionsConfig   `json:"sessions"`
	Nats         NatsConfig       `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	_, err := c.tickInterval()
	el.Add(err)

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}

	ports := map[uint16]int{}
	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
		if prev, ok := ports[l.Port]; ok && l.Port != 0 {
			el.Add(fmt.Errorf("listener %d: port %d already used by listener %d", i, l.Port, prev))
		}
		ports[l.Port] = i
	}

	el.Add(c.World.validate())
	el.Add(c.Sessions.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

func (c *Config) tickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if d < time.Second {
		return 0, fmt.Errorf("tick_interval must be at least 1 second")
	}
	return d, nil
}
