package session

import (
	"errors"

	"github.com/pixil98/go-adventure/internal/game"
)

// Describe turns an action failure into something to show the player.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrNameRequired):
		return "Enter a name for your player."
	case errors.Is(err, game.ErrRoomNotFound):
		return "There is no such room."
	case errors.Is(err, game.ErrNoSuchExit):
		return "You can't go that way."
	case errors.Is(err, game.ErrItemNotFound):
		return "You don't see that here."
	case errors.Is(err, game.ErrItemNotInInventory):
		return "You aren't carrying that."
	case errors.Is(err, game.ErrItemNotEdible):
		return "You can't eat that!"
	case errors.Is(err, game.ErrUnknownAction):
		return "You can't do that."
	default:
		return "Something went wrong."
	}
}
