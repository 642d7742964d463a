package game

import "errors"

var (
	ErrWorldLoad          = errors.New("invalid world definition")
	ErrRoomNotFound       = errors.New("room not found")
	ErrNoSuchExit         = errors.New("no exit in that direction")
	ErrItemNotFound       = errors.New("item not found in room")
	ErrItemNotInInventory = errors.New("item not in inventory")
	ErrItemNotEdible      = errors.New("item is not edible")
	ErrUnknownAction      = errors.New("unknown action")
	ErrDuplicateItem      = errors.New("item id already present")
)

// LoadError reports every problem found while loading a world definition.
// It matches ErrWorldLoad with errors.Is.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return ErrWorldLoad.Error() + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrWorldLoad, e.Err}
}
