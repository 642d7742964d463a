package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"syscall"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/gin-gonic/gin"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCookieName = "adventure_session"
	shutdownTimeout   = 5 * time.Second
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the browser game over HTTP.
type Server struct {
	port       uint16
	sessions   *session.Manager
	cookieName string
	startRoom  int
	logger     logrus.FieldLogger

	engine *gin.Engine
}

func NewServer(port uint16, sessions *session.Manager, opts ...ServerOpt) (*Server, error) {
	s := &Server{
		port:       port,
		sessions:   sessions,
		cookieName: DefaultCookieName,
		startRoom:  -1,
		logger:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	engine, err := s.buildEngine()
	if err != nil {
		return nil, err
	}
	s.engine = engine

	return s, nil
}

func (s *Server) buildEngine() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(s.sessionMiddleware())
	r.SetHTMLTemplate(tmpl)

	h := &handler{sessions: s.sessions, cookieName: s.cookieName, startRoom: s.startRoom}
	r.GET("/", h.newPlayerPage)
	r.POST("/player", h.createPlayer)
	r.GET("/rooms/:roomId", h.roomPage)
	r.GET("/rooms/:roomId/:direction", h.move)
	r.POST("/items/:itemId/:action", h.itemAction)
	r.NoRoute(h.fallback)

	return r, nil
}

// Handler returns the HTTP handler for the game.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.InfoContext(ctx, "listening for http", "port", s.port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use (another server running?)", s.port)
		}
		return fmt.Errorf("serving http on port %d: %w", s.port, err)
	}
}
