package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
)

type handler struct {
	sessions   *session.Manager
	cookieName string
	startRoom  int
}

type itemView struct {
	ID      int
	Name    string
	Actions []string
}

type exitView struct {
	Direction string
	RoomId    int
}

func newItemViews(items []*game.Item, held bool) []itemView {
	views := make([]itemView, 0, len(items))
	for _, it := range items {
		v := itemView{ID: it.ID, Name: it.Name}
		for _, a := range it.Actions(held) {
			v.Actions = append(v.Actions, a.String())
		}
		views = append(views, v)
	}
	return views
}

// newPlayerPage lists the rooms a new player can start in.
func (h *handler) newPlayerPage(c *gin.Context) {
	world := h.sessions.World()

	var messages []string
	if sess := currentSession(c); sess != nil {
		messages = sess.TakeMessages()
	}

	c.HTML(http.StatusOK, "new-player.html", gin.H{
		"AvailableRooms": world.DescribeAvailableRooms(),
		"Rooms":          world.Rooms(),
		"StartRoom":      h.startRoom,
		"Messages":       messages,
	})
}

func (h *handler) createPlayer(c *gin.Context) {
	sess := startSession(c, h.sessions, h.cookieName)

	roomId, err := strconv.Atoi(c.PostForm("roomId"))
	if err != nil {
		sess.AddMessage("Choose a room to start in.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	err = sess.NewPlayer(c.PostForm("name"), roomId)
	if err != nil {
		sess.AddMessage(session.Describe(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, roomPath(roomId))
}

func (h *handler) roomPage(c *gin.Context) {
	sess := currentSession(c)

	if _, ok := h.requireRoom(c, sess); !ok {
		return
	}

	var data gin.H
	err := sess.Do(func(p *game.Player) error {
		room := p.CurrentRoom()
		var exits []exitView
		roomExits := room.Exits()
		for _, d := range game.Directions {
			if id, ok := roomExits[d]; ok {
				exits = append(exits, exitView{Direction: d.String(), RoomId: id})
			}
		}
		data = gin.H{
			"Player":    p.Name(),
			"RoomId":    room.ID(),
			"RoomName":  room.Name(),
			"Items":     newItemViews(room.Items(), false),
			"Inventory": newItemViews(p.Inventory(), true),
			"Exits":     exits,
		}
		return nil
	})
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	data["Messages"] = sess.TakeMessages()

	c.HTML(http.StatusOK, "room.html", data)
}

func (h *handler) move(c *gin.Context) {
	sess := currentSession(c)

	if _, ok := h.requireRoom(c, sess); !ok {
		return
	}

	room, err := sess.Move(c.Param("direction"))
	if err != nil {
		sess.AddMessage(session.Describe(err))
		h.redirectToRoom(c, sess)
		return
	}

	c.Redirect(http.StatusFound, roomPath(room.ID()))
}

func (h *handler) itemAction(c *gin.Context) {
	sess := currentSession(c)

	if sess == nil || !sess.HasPlayer() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	itemId, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		sess.AddMessage("There is no such item.")
		h.redirectToRoom(c, sess)
		return
	}

	action, err := game.ParseAction(c.Param("action"))
	if err != nil {
		sess.AddMessage(fmt.Sprintf("You can't %s that.", c.Param("action")))
		h.redirectToRoom(c, sess)
		return
	}

	it, err := sess.Perform(action, itemId)
	if err != nil {
		sess.AddMessage(session.Describe(err))
	} else {
		sess.AddMessage(fmt.Sprintf("You %s the %s.", action, it.Name))
	}

	h.redirectToRoom(c, sess)
}

// fallback sends the player back to where they are, or to the start page
// when there is no player yet.
func (h *handler) fallback(c *gin.Context) {
	h.redirectToRoom(c, currentSession(c))
}

// requireRoom checks that the session has a player standing in the room
// named in the URL. Otherwise it redirects and returns false.
func (h *handler) requireRoom(c *gin.Context, sess *session.Session) (int, bool) {
	if sess == nil {
		c.Redirect(http.StatusFound, "/")
		return 0, false
	}
	current, err := sess.RoomId()
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return 0, false
	}

	requested, err := strconv.Atoi(c.Param("roomId"))
	if err != nil || requested != current {
		c.Redirect(http.StatusFound, roomPath(current))
		return 0, false
	}

	return current, true
}

func (h *handler) redirectToRoom(c *gin.Context, sess *session.Session) {
	if sess == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	roomId, err := sess.RoomId()
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, roomPath(roomId))
}

func roomPath(id int) string {
	return fmt.Sprintf("/rooms/%d", id)
}
