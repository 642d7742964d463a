package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/console"
	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-adventure/internal/web"
	"github.com/pixil98/go-service/service"
	"github.com/sirupsen/logrus"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}
	logger := logrus.StandardLogger()

	workers := service.WorkerList{}

	// Load the world every session is copied from
	world, err := cfg.World.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	// Optional event bus
	var pub session.Publisher
	if cfg.Nats.Enabled {
		natsServer, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = natsServer
		workers["activity"] = messaging.NewActivityLog(natsServer)
		pub = messaging.NewEventPublisher(natsServer)
	}

	sessions, err := cfg.Sessions.BuildManager(world, pub)
	if err != nil {
		return nil, fmt.Errorf("creating session manager: %w", err)
	}
	workers["sessions"] = sessions

	tick, err := cfg.tickInterval()
	if err != nil {
		return nil, err
	}
	workers["driver"] = driver.NewDriver([]driver.Manager{sessions}, driver.WithTickLength(tick))

	// Front ends
	webOpts := []web.ServerOpt{
		web.WithStartRoom(cfg.World.startRoom()),
		web.WithLogger(logger.WithField("listener", "http")),
	}
	if cfg.Sessions.CookieName != "" {
		webOpts = append(webOpts, web.WithCookieName(cfg.Sessions.CookieName))
	}
	fe := &frontEnds{
		sessions: sessions,
		web:      webOpts,
		console:  listener.NewConnectionManager(console.NewConsole(sessions, console.WithStartRoom(cfg.World.startRoom()))),
		logger:   logger,
	}

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(fe)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("%s-%d", l.Protocol, i)] = w
	}
	workers["listeners"] = &listeners

	logger.WithFields(logrus.Fields{
		"rooms":     len(world.Rooms()),
		"listeners": len(listeners),
		"nats":      cfg.Nats.Enabled,
		"tick":      tick.Round(time.Second),
	}).Info("workers built")

	return workers, nil
}
