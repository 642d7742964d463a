package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/sirupsen/logrus"
)

const sessionKey = "session"

// sessionMiddleware attaches the caller's existing session to the request.
// Requests without a live session carry none; only createPlayer starts one.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(s.cookieName); err == nil {
			if sess := s.sessions.Get(id); sess != nil {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

// currentSession returns the request's session, or nil if it has none.
func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		return v.(*session.Session)
	}
	return nil
}

// startSession returns the request's session, creating one and setting its
// cookie if there is none.
func startSession(c *gin.Context, sessions *session.Manager, cookieName string) *session.Session {
	if sess := currentSession(c); sess != nil {
		return sess
	}

	sess := sessions.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, sess.ID(), 0, "/", "", false, true)
	c.Set(sessionKey, sess)
	return sess
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}
		if v, ok := c.Get(sessionKey); ok {
			fields["session"] = v.(*session.Session).ID()
		}
		logger.WithFields(fields).Debug("handled request")
	}
}
