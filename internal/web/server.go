// Package web exposes the Thistlethwaite solver over HTTP as a small JSON
// API. Adapted from the teacher's internal/web: the HTML index page, the
// terminal emulator, and the /api/exec shell-out endpoint are dropped —
// they're the out-of-scope terminal display surface, and handleExec's
// os/exec of arbitrary client input is a command injection risk with no
// justification to keep.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/behrlich/thistlecube/internal/history"
)

// Server serves the JSON solve API.
type Server struct {
	router  *mux.Router
	history *history.DB
}

// NewServer builds a Server. db may be nil, in which case solves aren't
// logged to history.
func NewServer(db *history.DB) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		history: db,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start runs the HTTP server, blocking until it exits.
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
