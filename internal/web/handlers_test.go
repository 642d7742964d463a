package web

import (
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-testutil"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testManager(t *testing.T) *session.Manager {
	t.Helper()
	w, err := game.LoadWorld([]game.RoomRecord{
		{
			ID:    0,
			Name:  "Hallway",
			Exits: map[string]int{"n": 1},
			Items: []game.ItemRecord{{ID: 10, Name: "rusty key"}},
		},
		{
			ID:    1,
			Name:  "Kitchen",
			Exits: map[string]int{"s": 0},
			Items: []game.ItemRecord{{ID: 11, Name: "apple", Edible: true}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error loading world: %v", err)
	}
	return session.NewManager(w)
}

// testClient drives the server and carries the session cookie between requests.
type testClient struct {
	t        *testing.T
	handler  http.Handler
	sessions *session.Manager
	cookie   *http.Cookie
}

func newTestClient(t *testing.T, opts ...ServerOpt) *testClient {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	opts = append([]ServerOpt{WithLogger(logger)}, opts...)

	m := testManager(t)
	s, err := NewServer(0, m, opts...)
	if err != nil {
		t.Fatalf("unexpected error creating server: %v", err)
	}
	return &testClient{t: t, handler: s.Handler(), sessions: m}
}

func (c *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == DefaultCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *testClient) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *testClient) createPlayer(name string, roomId string) {
	c.t.Helper()
	rec := c.post("/player", url.Values{"name": {name}, "roomId": {roomId}})
	if rec.Code != http.StatusFound {
		c.t.Fatalf("create player: expected 302, got %d", rec.Code)
	}
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, exp string) {
	t.Helper()
	testutil.AssertEqual(t, "status", rec.Code, http.StatusFound)
	testutil.AssertEqual(t, "location", rec.Header().Get("Location"), exp)
}

func assertBodyContains(t *testing.T, rec *httptest.ResponseRecorder, substr string) {
	t.Helper()
	body := html.UnescapeString(rec.Body.String())
	if !strings.Contains(body, substr) {
		t.Errorf("expected body to contain %q, got:\n%s", substr, body)
	}
}

func TestServer_NewPlayerPage(t *testing.T) {
	c := newTestClient(t, WithStartRoom(1))

	rec := c.get("/")
	testutil.AssertEqual(t, "status", rec.Code, http.StatusOK)
	assertBodyContains(t, rec, "Room 0: Hallway")
	assertBodyContains(t, rec, "Room 1: Kitchen")
	assertBodyContains(t, rec, `<option value="1" selected>`)

	if c.cookie != nil {
		t.Errorf("expected no session cookie before a player is created, got %q", c.cookie.Value)
	}
}

func TestServer_NoSessionWithoutPlayer(t *testing.T) {
	c := newTestClient(t)

	for range 100 {
		for _, path := range []string{"/", "/favicon.ico", "/rooms/0", "/rooms/0/north"} {
			c.get(path)
		}
		c.post("/items/10/take", url.Values{})
	}

	if c.cookie != nil {
		t.Errorf("expected no session cookie, got %q", c.cookie.Value)
	}
	testutil.AssertEqual(t, "sessions", c.sessions.Len(), 0)

	c.get("/")
	c.post("/player", url.Values{"name": {"Ada"}, "roomId": {"0"}})
	testutil.AssertEqual(t, "sessions after create", c.sessions.Len(), 1)
}

func TestServer_SessionCookieReused(t *testing.T) {
	c := newTestClient(t)

	rec := c.post("/player", url.Values{"name": {"Ada"}, "roomId": {"zero"}})
	assertRedirect(t, rec, "/")
	if c.cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	testutil.AssertEqual(t, "http only", c.cookie.HttpOnly, true)
	first := c.cookie.Value

	rec = c.post("/player", url.Values{"name": {"Ada"}, "roomId": {"0"}})
	assertRedirect(t, rec, "/rooms/0")
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == DefaultCookieName {
			t.Errorf("expected no new cookie, got %q", ck.Value)
		}
	}
	testutil.AssertEqual(t, "session", c.cookie.Value, first)
	testutil.AssertEqual(t, "sessions", c.sessions.Len(), 1)
}

func TestServer_NoPlayerRedirects(t *testing.T) {
	tests := map[string]struct {
		method string
		path   string
	}{
		"room page":    {method: http.MethodGet, path: "/rooms/0"},
		"move":         {method: http.MethodGet, path: "/rooms/0/north"},
		"item action":  {method: http.MethodPost, path: "/items/10/take"},
		"unknown path": {method: http.MethodGet, path: "/nowhere"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t)
			var rec *httptest.ResponseRecorder
			if tt.method == http.MethodPost {
				rec = c.post(tt.path, url.Values{})
			} else {
				rec = c.get(tt.path)
			}
			assertRedirect(t, rec, "/")
		})
	}
}

func TestServer_CreatePlayerInvalid(t *testing.T) {
	tests := map[string]struct {
		name   string
		roomId string
		expMsg string
	}{
		"missing room":  {name: "Ada", roomId: "", expMsg: "Choose a room to start in."},
		"unknown room":  {name: "Ada", roomId: "7", expMsg: "There is no such room."},
		"blank name":    {name: "  ", roomId: "0", expMsg: "Enter a name for your player."},
		"room not a id": {name: "Ada", roomId: "kitchen", expMsg: "Choose a room to start in."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t)

			rec := c.post("/player", url.Values{"name": {tt.name}, "roomId": {tt.roomId}})
			assertRedirect(t, rec, "/")

			rec = c.get("/")
			assertBodyContains(t, rec, tt.expMsg)

			rec = c.get("/rooms/0")
			assertRedirect(t, rec, "/")
		})
	}
}

func TestServer_Scenario(t *testing.T) {
	c := newTestClient(t)
	c.get("/")

	rec := c.post("/player", url.Values{"name": {"Ada"}, "roomId": {"0"}})
	assertRedirect(t, rec, "/rooms/0")

	rec = c.get("/rooms/0")
	testutil.AssertEqual(t, "status", rec.Code, http.StatusOK)
	assertBodyContains(t, rec, "Ada is standing in the hallway.")
	assertBodyContains(t, rec, `action="/items/10/take"`)
	assertBodyContains(t, rec, `href="/rooms/0/north">North</a>`)

	rec = c.post("/items/10/take", url.Values{})
	assertRedirect(t, rec, "/rooms/0")

	rec = c.get("/rooms/0")
	assertBodyContains(t, rec, "You take the rusty key.")
	assertBodyContains(t, rec, `action="/items/10/drop"`)

	rec = c.get("/rooms/0/north")
	assertRedirect(t, rec, "/rooms/1")

	rec = c.post("/items/11/take", url.Values{})
	assertRedirect(t, rec, "/rooms/1")
	rec = c.post("/items/11/eat", url.Values{})
	assertRedirect(t, rec, "/rooms/1")

	rec = c.get("/rooms/1")
	assertBodyContains(t, rec, "You take the apple.")
	assertBodyContains(t, rec, "You eat the apple.")
	if strings.Contains(rec.Body.String(), `action="/items/11/`) {
		t.Error("expected apple to be gone")
	}

	rec = c.post("/items/10/drop", url.Values{})
	assertRedirect(t, rec, "/rooms/1")
	rec = c.get("/rooms/1")
	assertBodyContains(t, rec, "You drop the rusty key.")
	assertBodyContains(t, rec, `action="/items/10/take"`)
}

func TestServer_RoomMismatch(t *testing.T) {
	c := newTestClient(t)
	c.createPlayer("Ada", "1")

	tests := map[string]struct {
		path string
	}{
		"other room":          {path: "/rooms/0"},
		"move from elsewhere": {path: "/rooms/0/north"},
		"bad room id":         {path: "/rooms/hall"},
		"unknown path":        {path: "/nowhere"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := c.get(tt.path)
			assertRedirect(t, rec, "/rooms/1")
		})
	}
}

func TestServer_FailedActions(t *testing.T) {
	tests := map[string]struct {
		method string
		path   string
		expMsg string
	}{
		"no exit":          {method: http.MethodGet, path: "/rooms/0/west", expMsg: "You can't go that way."},
		"bad direction":    {method: http.MethodGet, path: "/rooms/0/sideways", expMsg: "You can't go that way."},
		"item not here":    {method: http.MethodPost, path: "/items/11/take", expMsg: "You don't see that here."},
		"item not carried": {method: http.MethodPost, path: "/items/10/drop", expMsg: "You aren't carrying that."},
		"not edible":       {method: http.MethodPost, path: "/items/10/eat", expMsg: "You aren't carrying that."},
		"bad item id":      {method: http.MethodPost, path: "/items/key/take", expMsg: "There is no such item."},
		"bad action":       {method: http.MethodPost, path: "/items/10/throw", expMsg: "You can't throw that."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t)
			c.createPlayer("Ada", "0")

			var rec *httptest.ResponseRecorder
			if tt.method == http.MethodPost {
				rec = c.post(tt.path, url.Values{})
			} else {
				rec = c.get(tt.path)
			}
			assertRedirect(t, rec, "/rooms/0")

			rec = c.get("/rooms/0")
			assertBodyContains(t, rec, tt.expMsg)
		})
	}
}

func TestServer_EatInedible(t *testing.T) {
	c := newTestClient(t)
	c.createPlayer("Ada", "0")

	c.post("/items/10/take", url.Values{})
	rec := c.post("/items/10/eat", url.Values{})
	assertRedirect(t, rec, "/rooms/0")

	rec = c.get("/rooms/0")
	assertBodyContains(t, rec, "You can't eat that!")
	assertBodyContains(t, rec, `action="/items/10/drop"`)
}

func TestServer_MessagesShownOnce(t *testing.T) {
	c := newTestClient(t)
	c.createPlayer("Ada", "0")

	c.get("/rooms/0/west")
	rec := c.get("/rooms/0")
	assertBodyContains(t, rec, "You can't go that way.")

	rec = c.get("/rooms/0")
	if strings.Contains(html.UnescapeString(rec.Body.String()), "You can't go that way.") {
		t.Error("expected message to be cleared after display")
	}
}

func TestServer_SessionsIsolated(t *testing.T) {
	s, err := NewServer(0, testManager(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := &testClient{t: t, handler: s.Handler()}
	b := &testClient{t: t, handler: s.Handler()}

	a.createPlayer("Ada", "0")
	b.createPlayer("Bob", "0")

	a.post("/items/10/take", url.Values{})

	rec := b.get("/rooms/0")
	assertBodyContains(t, rec, "Bob is standing in the hallway.")
	assertBodyContains(t, rec, `action="/items/10/take"`)
}
