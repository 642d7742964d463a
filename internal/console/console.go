package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pixil98/go-adventure/internal"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
)

const (
	maxNameTries = 3
	helpText     = `Commands:
  look (l)              describe where you are
  inventory (i)         list what you are carrying
  go <direction>        walk north, south, east, west, up or down
  <direction>           same as go, for example "n" or "north"
  take (get) <item id>  pick something up
  drop <item id>        put something down
  eat <item id>         eat something you are carrying
  help                  show this list
  quit                  leave the game`
)

var errQuit = errors.New("player quit")

// Console plays the game over a line oriented connection.
type Console struct {
	sessions  *session.Manager
	startRoom int
}

func NewConsole(sessions *session.Manager, opts ...ConsoleOpt) *Console {
	c := &Console{
		sessions:  sessions,
		startRoom: -1,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run plays one game on rw until the player quits, the connection closes,
// the session expires or ctx is canceled.
func (c *Console) Run(ctx context.Context, rw io.ReadWriter) error {
	sess := c.sessions.Create()
	defer c.sessions.Remove(sess.ID())

	term := internal.NewTerminal(rw)

	err := c.newPlayer(term, sess)
	if err != nil {
		return ignoreHangup(err)
	}

	err = c.look(term, sess)
	if err != nil {
		return ignoreHangup(err)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := term.Prompt("> ")
		if err != nil {
			return ignoreHangup(err)
		}

		// The session may have been evicted while we waited for input.
		if c.sessions.Get(sess.ID()) == nil {
			return ignoreHangup(term.Println("You have been idle too long. Goodbye."))
		}

		err = c.handle(term, sess, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return ignoreHangup(err)
		}
	}
}

func (c *Console) newPlayer(term *internal.Terminal, sess *session.Session) error {
	err := term.Println(display.Wrap("Welcome, adventurer."))
	if err != nil {
		return err
	}

	name, err := term.Prompt("What is your name? ",
		internal.WithValidator(func(s string) (bool, string) {
			if strings.TrimSpace(s) == "" {
				return false, session.Describe(session.ErrNameRequired) + "\n"
			}
			return true, ""
		}),
		internal.WithMaxTries(maxNameTries),
	)
	if err != nil {
		return err
	}

	world := c.sessions.World()
	err = term.Printf("\nWhere would you like to start?\n%s\n", world.DescribeAvailableRooms())
	if err != nil {
		return err
	}

	prompt := "Room number: "
	if _, err := world.GetRoom(c.startRoom); err == nil {
		prompt = fmt.Sprintf("Room number [%d]: ", c.startRoom)
	}

	var roomId int
	_, err = term.Prompt(prompt, internal.WithValidator(func(s string) (bool, string) {
		s = strings.TrimSpace(s)
		if s == "" && c.startRoom >= 0 {
			s = strconv.Itoa(c.startRoom)
		}
		id, err := strconv.Atoi(s)
		if err != nil {
			return false, "Choose a room to start in.\n"
		}
		if _, err := world.GetRoom(id); err != nil {
			return false, session.Describe(err) + "\n"
		}
		roomId = id
		return true, ""
	}))
	if err != nil {
		return err
	}

	return sess.NewPlayer(name, roomId)
}

func (c *Console) handle(term *internal.Terminal, sess *session.Session, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	switch verb {
	case "look", "l":
		return c.look(term, sess)

	case "inventory", "inv", "i":
		return sess.Do(func(p *game.Player) error {
			return term.Printf("You are carrying:\n%s\n", p.DescribeInventory())
		})

	case "go", "move", "walk":
		if arg == "" {
			return term.Println("Go where?")
		}
		return c.move(term, sess, arg)

	case "take", "get", "drop", "eat":
		if verb == "get" {
			verb = "take"
		}
		return c.itemAction(term, sess, verb, arg)

	case "help", "?":
		return term.Println(helpText)

	case "quit", "exit":
		ok, err := term.PromptYN("Are you sure you want to quit? ")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := term.Println("Goodbye."); err != nil {
			return err
		}
		return errQuit
	}

	if isDirection(verb) {
		return c.move(term, sess, verb)
	}

	return term.Println("I don't understand that. Type \"help\" for a list of commands.")
}

func (c *Console) look(term *internal.Terminal, sess *session.Session) error {
	return sess.Do(func(p *game.Player) error {
		room := p.CurrentRoom()
		return term.Printf("\n%s\nYou see:\n%s\nExits: %s\n",
			display.Title(room.Name()),
			room.DescribeItems(),
			room.DescribeExits(),
		)
	})
}

func (c *Console) move(term *internal.Terminal, sess *session.Session, direction string) error {
	_, err := sess.Move(direction)
	if err != nil {
		if !isPlayerError(err) {
			return err
		}
		return term.Println(session.Describe(err))
	}
	return c.look(term, sess)
}

func (c *Console) itemAction(term *internal.Terminal, sess *session.Session, verb string, arg string) error {
	action, err := game.ParseAction(verb)
	if err != nil {
		return err
	}

	if arg == "" {
		return term.Printf("%s what?\n", display.Capitalize(verb))
	}
	itemId, err := strconv.Atoi(arg)
	if err != nil {
		return term.Println("There is no such item.")
	}

	it, err := sess.Perform(action, itemId)
	if err != nil {
		if !isPlayerError(err) {
			return err
		}
		return term.Println(session.Describe(err))
	}

	return term.Printf("You %s the %s.\n", action, it.Name)
}

// isDirection reports whether word is a direction written out in full or
// as its single letter.
func isDirection(word string) bool {
	for _, d := range game.Directions {
		if word == d.String() || word == d.Letter() {
			return true
		}
	}
	return false
}

// isPlayerError reports whether err is an ordinary rule failure the player
// should be told about, rather than a broken session.
func isPlayerError(err error) bool {
	for _, target := range []error{
		game.ErrNoSuchExit,
		game.ErrRoomNotFound,
		game.ErrItemNotFound,
		game.ErrItemNotInInventory,
		game.ErrItemNotEdible,
		game.ErrUnknownAction,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func ignoreHangup(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	if errors.Is(err, internal.ErrTooManyTries) {
		slog.Debug("console closed after too many tries")
		return nil
	}
	return err
}
