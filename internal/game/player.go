package game

import (
	"fmt"
)

// Player is the user's presence in a World: a current room plus the items
// being carried. The current room is held by ID and resolved through the
// World on use.
type Player struct {
	name      string
	world     *World
	roomId    int
	inventory *Inventory
}

// NewPlayer places a new player with an empty inventory in the given room.
func NewPlayer(name string, world *World, roomId int) (*Player, error) {
	if _, err := world.GetRoom(roomId); err != nil {
		return nil, err
	}
	return &Player{
		name:      name,
		world:     world,
		roomId:    roomId,
		inventory: newInventory(),
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

// CurrentRoom returns the room the player is standing in.
func (p *Player) CurrentRoom() *Room {
	// roomId is only ever set to an ID the world resolved.
	r, _ := p.world.GetRoom(p.roomId)
	return r
}

// Inventory returns the carried items in pickup order.
func (p *Player) Inventory() []*Item {
	return p.inventory.Items()
}

// Move follows the exit in the given direction. On failure the player
// stays where they are.
func (p *Player) Move(direction string) error {
	destId, err := p.CurrentRoom().ResolveExit(direction)
	if err != nil {
		return err
	}
	if _, err := p.world.GetRoom(destId); err != nil {
		return err
	}
	p.roomId = destId
	return nil
}

// TakeItem moves an item from the current room into the inventory.
func (p *Player) TakeItem(id int) error {
	room := p.CurrentRoom()
	if !room.items.Contains(id) {
		return fmt.Errorf("%w: item %d in %s", ErrItemNotFound, id, room.name)
	}
	if p.inventory.Contains(id) {
		return fmt.Errorf("%w: item %d already carried", ErrDuplicateItem, id)
	}

	it, err := room.RemoveItem(id)
	if err != nil {
		return err
	}
	return p.inventory.Add(it)
}

// DropItem moves an item from the inventory into the current room.
func (p *Player) DropItem(id int) error {
	if !p.inventory.Contains(id) {
		return fmt.Errorf("%w: item %d", ErrItemNotInInventory, id)
	}
	room := p.CurrentRoom()
	if room.items.Contains(id) {
		return fmt.Errorf("%w: item %d already in %s", ErrDuplicateItem, id, room.name)
	}

	return room.AddItem(p.inventory.Remove(id))
}

// EatItem destroys an edible item from the inventory.
func (p *Player) EatItem(id int) error {
	it := p.inventory.Get(id)
	if it == nil {
		return fmt.Errorf("%w: item %d", ErrItemNotInInventory, id)
	}
	if !it.Supports(ActionEat) {
		return fmt.Errorf("%w: %s", ErrItemNotEdible, it.Name)
	}
	p.inventory.Remove(id)
	return nil
}

// Perform applies an action to an item and returns the item acted on.
func (p *Player) Perform(a Action, id int) (*Item, error) {
	var it *Item
	switch a {
	case ActionTake:
		it = p.CurrentRoom().items.Get(id)
		if err := p.TakeItem(id); err != nil {
			return nil, err
		}
	case ActionDrop:
		it = p.inventory.Get(id)
		if err := p.DropItem(id); err != nil {
			return nil, err
		}
	case ActionEat:
		it = p.inventory.Get(id)
		if err := p.EatItem(id); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAction, a)
	}
	return it, nil
}

// DescribeInventory lists the carried items, one per line.
func (p *Player) DescribeInventory() string {
	return p.inventory.describe()
}
