package driver

import "time"

type DriverOpt func(*Driver)

// WithTickLength sets how often managers are ticked.
func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		d.tickLength = tickLength
	}
}

// WithMaxFailures stops the driver after n consecutive failed ticks. Zero,
// the default, keeps it running regardless.
func WithMaxFailures(n int) DriverOpt {
	return func(d *Driver) {
		d.maxFailures = n
	}
}
