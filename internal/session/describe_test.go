package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestDescribe(t *testing.T) {
	tests := map[string]struct {
		err error
		exp string
	}{
		"name":         {err: ErrNameRequired, exp: "Enter a name for your player."},
		"wrapped exit": {err: fmt.Errorf("room 3: %w", game.ErrNoSuchExit), exp: "You can't go that way."},
		"not edible":   {err: game.ErrItemNotEdible, exp: "You can't eat that!"},
		"not carried":  {err: game.ErrItemNotInInventory, exp: "You aren't carrying that."},
		"other":        {err: errors.New("boom"), exp: "Something went wrong."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "message", Describe(tt.err), tt.exp)
		})
	}
}
