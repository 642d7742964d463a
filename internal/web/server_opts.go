package web

import "github.com/sirupsen/logrus"

type ServerOpt func(*Server)

// WithCookieName sets the name of the cookie carrying the session id.
func WithCookieName(name string) ServerOpt {
	return func(s *Server) {
		s.cookieName = name
	}
}

// WithStartRoom preselects a room on the new player page.
func WithStartRoom(id int) ServerOpt {
	return func(s *Server) {
		s.startRoom = id
	}
}

func WithLogger(logger logrus.FieldLogger) ServerOpt {
	return func(s *Server) {
		s.logger = logger
	}
}
