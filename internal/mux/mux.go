package mux

import (
	"hearts-client/pkg/feed"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	gmux "github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Mux serves the status endpoints of the client
type Mux struct {
	*gmux.Router
	version string
	hub     *feed.Hub
}

// NewMux returns a new HTTP mux reporting the events published on hub
func NewMux(version string, hub *feed.Hub) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		hub:     hub,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/status").Handler(this.getStatus())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}

// Handler wraps the mux with CORS and, when enabled, combined access logs
func (m *Mux) Handler(accessLogs bool) http.Handler {
	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	h := c.Handler(m)
	if !accessLogs {
		return h
	}

	return handlers.CombinedLoggingHandler(os.Stdout, h)
}
