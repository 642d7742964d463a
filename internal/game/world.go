package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-errors"
)

// RoomRecord is the declarative definition of one room.
type RoomRecord struct {
	ID    int            `json:"id" yaml:"id"`
	Name  string         `json:"name" yaml:"name"`
	Exits map[string]int `json:"exits,omitempty" yaml:"exits,omitempty"` // direction -> room id
	Items []ItemRecord   `json:"items,omitempty" yaml:"items,omitempty"`
}

// Validate checks the record in isolation. Cross-references are checked by
// LoadWorld.
func (r *RoomRecord) Validate() error {
	el := errors.NewErrorList()

	if strings.TrimSpace(r.Name) == "" {
		el.Add(fmt.Errorf("room %d: name is required", r.ID))
	}
	for dir := range r.Exits {
		if _, ok := ParseDirection(dir); !ok {
			el.Add(fmt.Errorf("room %d: unknown exit direction %q", r.ID, dir))
		}
	}
	for _, it := range r.Items {
		if strings.TrimSpace(it.Name) == "" {
			el.Add(fmt.Errorf("room %d: item %d: name is required", r.ID, it.ID))
		}
	}

	return el.Err()
}

// ItemRecord is the declarative definition of one item.
type ItemRecord struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Edible bool   `json:"edible,omitempty" yaml:"edible,omitempty"`
}

// World owns every room. Rooms reference each other by ID only.
type World struct {
	rooms map[int]*Room
}

// LoadWorld builds a World from its definition. Every problem in the
// definition is reported in a single *LoadError and no World is returned.
func LoadWorld(def []RoomRecord) (*World, error) {
	el := errors.NewErrorList()

	if len(def) == 0 {
		el.Add(fmt.Errorf("no rooms defined"))
	}

	ids := make(map[int]bool, len(def))
	for _, rec := range def {
		if ids[rec.ID] {
			el.Add(fmt.Errorf("duplicate room id %d", rec.ID))
		}
		ids[rec.ID] = true
	}

	itemRooms := map[int]int{}
	rooms := make(map[int]*Room, len(def))
	for _, rec := range def {
		el.Add(rec.Validate())

		exits := make(map[Direction]int, len(rec.Exits))
		for token, target := range rec.Exits {
			d, ok := ParseDirection(token)
			if !ok {
				continue
			}
			if _, dup := exits[d]; dup {
				el.Add(fmt.Errorf("room %d: exit %s defined more than once", rec.ID, d))
			}
			if !ids[target] {
				el.Add(fmt.Errorf("room %d: exit %s references unknown room %d", rec.ID, d, target))
			}
			exits[d] = target
		}

		items := make([]*Item, 0, len(rec.Items))
		for _, ir := range rec.Items {
			if other, dup := itemRooms[ir.ID]; dup {
				el.Add(fmt.Errorf("room %d: item id %d already used in room %d", rec.ID, ir.ID, other))
				continue
			}
			itemRooms[ir.ID] = rec.ID
			items = append(items, &Item{ID: ir.ID, Name: ir.Name, Edible: ir.Edible})
		}

		rooms[rec.ID] = newRoom(rec.ID, rec.Name, exits, items...)
	}

	if err := el.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}

	return &World{rooms: rooms}, nil
}

// GetRoom returns the room with the given ID.
func (w *World) GetRoom(id int) (*Room, error) {
	r, ok := w.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, id)
	}
	return r, nil
}

// Rooms returns every room ordered by ID.
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, 0, len(w.rooms))
	for _, r := range w.rooms {
		rooms = append(rooms, r)
	}
	slices.SortFunc(rooms, func(a, b *Room) int { return a.id - b.id })
	return rooms
}

// DescribeAvailableRooms lists every room and its ID, one per line.
func (w *World) DescribeAvailableRooms() string {
	lines := make([]string, 0, len(w.rooms))
	for _, r := range w.Rooms() {
		lines = append(lines, fmt.Sprintf("Room %d: %s", r.id, r.name))
	}
	return strings.Join(lines, "\n")
}

// Clone returns an independent copy of the world. Item moves in the copy do
// not affect the original.
func (w *World) Clone() *World {
	rooms := make(map[int]*Room, len(w.rooms))
	for id, r := range w.rooms {
		rooms[id] = r.clone()
	}
	return &World{rooms: rooms}
}
