package game

import (
	"fmt"
	"maps"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
)

// Room is a location in the world. Exits point at other rooms by ID; the
// World resolves them.
type Room struct {
	id    int
	name  string
	exits map[Direction]int
	items *Inventory
}

func newRoom(id int, name string, exits map[Direction]int, items ...*Item) *Room {
	return &Room{
		id:    id,
		name:  name,
		exits: exits,
		items: newInventory(items...),
	}
}

func (r *Room) ID() int {
	return r.id
}

func (r *Room) Name() string {
	return r.name
}

// Exits returns a copy of the room's exits.
func (r *Room) Exits() map[Direction]int {
	return maps.Clone(r.exits)
}

// Items returns the items lying in the room in the order they arrived.
func (r *Room) Items() []*Item {
	return r.items.Items()
}

// ResolveExit returns the ID of the room reached by going direction.
// Only the first character of direction matters, case-insensitively; a token
// whose first character is not a known direction is treated as a missing exit.
func (r *Room) ResolveExit(direction string) (int, error) {
	d, ok := ParseDirection(direction)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchExit, direction)
	}
	id, ok := r.exits[d]
	if !ok {
		return 0, fmt.Errorf("%w: %s from %s", ErrNoSuchExit, d, r.name)
	}
	return id, nil
}

// AddItem puts an item in the room. It fails with ErrDuplicateItem if the
// room already holds an item with that ID.
func (r *Room) AddItem(it *Item) error {
	return r.items.Add(it)
}

// RemoveItem takes an item out of the room.
func (r *Room) RemoveItem(id int) (*Item, error) {
	it := r.items.Remove(id)
	if it == nil {
		return nil, fmt.Errorf("%w: item %d in %s", ErrItemNotFound, id, r.name)
	}
	return it, nil
}

// DescribeItems lists the items lying in the room, one per line.
func (r *Room) DescribeItems() string {
	return r.items.describe()
}

// DescribeExits lists the directions out of the room, each title cased the
// way exit links are labelled.
func (r *Room) DescribeExits() string {
	var names []string
	for _, d := range Directions {
		if _, ok := r.exits[d]; ok {
			names = append(names, d.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return display.Title(strings.Join(names, ", "))
}

func (r *Room) clone() *Room {
	return &Room{
		id:    r.id,
		name:  r.name,
		exits: maps.Clone(r.exits),
		items: r.items.clone(),
	}
}
