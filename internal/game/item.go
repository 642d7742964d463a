package game

import (
	"fmt"
	"strings"
)

// Item is a world object. Its ID is unique across the whole world, not per
// room, so an item can be addressed without knowing where it is.
type Item struct {
	ID     int
	Name   string
	Edible bool
}

// Action is the closed set of things a player can do to an item.
type Action int

const (
	ActionUnknown Action = iota
	ActionTake
	ActionDrop
	ActionEat
)

// ParseAction maps an action name to its Action.
func ParseAction(s string) (Action, error) {
	var a Action
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return ActionUnknown, err
	}
	return a, nil
}

func (a *Action) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "take":
		*a = ActionTake
	case "drop":
		*a = ActionDrop
	case "eat":
		*a = ActionEat
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, text)
	}
	return nil
}

func (a Action) String() string {
	switch a {
	case ActionTake:
		return "take"
	case ActionDrop:
		return "drop"
	case ActionEat:
		return "eat"
	default:
		return "unknown"
	}
}

// Supports reports whether the item has the capability the action needs.
// Every item can be taken and dropped; only edible items can be eaten.
func (i *Item) Supports(a Action) bool {
	switch a {
	case ActionTake, ActionDrop:
		return true
	case ActionEat:
		return i.Edible
	default:
		return false
	}
}

// Actions returns the actions the item supports while held or lying in a room.
func (i *Item) Actions(held bool) []Action {
	if !held {
		return []Action{ActionTake}
	}
	actions := []Action{ActionDrop}
	if i.Supports(ActionEat) {
		actions = append(actions, ActionEat)
	}
	return actions
}
