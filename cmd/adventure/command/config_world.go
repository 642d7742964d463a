package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/worlds"
	"github.com/pixil98/go-errors"
)

type WorldConfig struct {
	// Path is a directory of room assets. Empty selects the built-in world.
	Path      string `json:"path,omitempty"`
	StartRoom *int   `json:"start_room,omitempty"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path != "" {
		_, err := os.Stat(c.Path)
		if err != nil {
			el.Add(fmt.Errorf("world: invalid path %q: %w", c.Path, err))
		}
	}

	return el.Err()
}

// BuildWorld loads the world and checks the configured start room exists.
func (c *WorldConfig) BuildWorld() (*game.World, error) {
	var def []game.RoomRecord
	var err error
	if c.Path == "" {
		def, err = worlds.Default()
	} else {
		def, err = worlds.Load(c.Path)
	}
	if err != nil {
		return nil, err
	}

	w, err := game.LoadWorld(def)
	if err != nil {
		return nil, err
	}

	if c.StartRoom != nil {
		if _, err := w.GetRoom(*c.StartRoom); err != nil {
			return nil, fmt.Errorf("world: start_room: %w", err)
		}
	}

	return w, nil
}

// startRoom returns the configured start room, or -1 when there is none.
func (c *WorldConfig) startRoom() int {
	if c.StartRoom == nil {
		return -1
	}
	return *c.StartRoom
}
