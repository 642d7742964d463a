package game

import (
	"fmt"
	"slices"
	"strings"
)

// Inventory holds items carried by a player or lying in a room, in the
// order they were added. Item IDs are unique within an inventory.
type Inventory struct {
	items []*Item
}

// newInventory creates an inventory holding the given items. The items must
// have distinct IDs; LoadWorld rejects definitions where they do not.
func newInventory(items ...*Item) *Inventory {
	return &Inventory{items: slices.Clone(items)}
}

// Add appends an item. It fails with ErrDuplicateItem if an item with the
// same ID is already present, leaving the inventory unchanged.
func (inv *Inventory) Add(it *Item) error {
	if inv.Contains(it.ID) {
		return fmt.Errorf("%w: item %d", ErrDuplicateItem, it.ID)
	}
	inv.items = append(inv.items, it)
	return nil
}

// Remove removes an item by ID.
// Returns the removed item, or nil if not found.
func (inv *Inventory) Remove(id int) *Item {
	i := inv.index(id)
	if i < 0 {
		return nil
	}
	it := inv.items[i]
	inv.items = slices.Delete(inv.items, i, i+1)
	return it
}

// Get returns an item by ID, or nil if not found.
func (inv *Inventory) Get(id int) *Item {
	if i := inv.index(id); i >= 0 {
		return inv.items[i]
	}
	return nil
}

// Contains checks if an item is in the inventory.
func (inv *Inventory) Contains(id int) bool {
	return inv.index(id) >= 0
}

// Items returns the items in insertion order.
func (inv *Inventory) Items() []*Item {
	return slices.Clone(inv.items)
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

func (inv *Inventory) index(id int) int {
	return slices.IndexFunc(inv.items, func(it *Item) bool { return it.ID == id })
}

func (inv *Inventory) clone() *Inventory {
	c := &Inventory{items: make([]*Item, 0, len(inv.items))}
	for _, it := range inv.items {
		cp := *it
		c.items = append(c.items, &cp)
	}
	return c
}

// describe returns one line per item, or "Nothing" when empty.
func (inv *Inventory) describe() string {
	if len(inv.items) == 0 {
		return "Nothing"
	}
	lines := make([]string, 0, len(inv.items))
	for _, it := range inv.items {
		lines = append(lines, fmt.Sprintf("%d: %s", it.ID, it.Name))
	}
	return strings.Join(lines, "\n")
}
