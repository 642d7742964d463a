package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-errors"
)

const (
	DefaultTickLength = time.Minute
)

// Manager is anything with periodic housekeeping to do.
type Manager interface {
	Tick(context.Context) error
}

// Driver ticks its managers at a fixed interval until shut down.
type Driver struct {
	tickLength  time.Duration
	managers    []Manager
	maxFailures int
	failures    int
}

func NewDriver(managers []Manager, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				d.failures++
				slog.WarnContext(ctx, "driver tick", "error", err, "consecutive_failures", d.failures)
				if d.maxFailures > 0 && d.failures >= d.maxFailures {
					return fmt.Errorf("giving up after %d failed ticks: %w", d.failures, err)
				}
				continue
			}
			d.failures = 0
		}
	}
}

// Tick runs one round of housekeeping. Every manager is ticked even when an
// earlier one fails; the failures are returned together.
func (d *Driver) Tick(ctx context.Context) error {
	el := errors.NewErrorList()
	for _, m := range d.managers {
		el.Add(m.Tick(ctx))
	}
	return el.Err()
}
