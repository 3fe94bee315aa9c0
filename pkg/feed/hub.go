package feed

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub fans decision events out to the connected clients
type Hub struct {
	clients    map[*Client]bool
	connect    chan *Client
	disconnect chan *Client
	publish    chan *Event
	close      chan bool
	done       chan bool

	last     *Event
	lastLock sync.RWMutex

	logger logrus.FieldLogger
}

// NewHub returns a new hub
func NewHub(logger logrus.FieldLogger) *Hub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Hub{
		clients:    make(map[*Client]bool),
		connect:    make(chan *Client),
		disconnect: make(chan *Client),
		publish:    make(chan *Event, 256),
		close:      make(chan bool),
		done:       make(chan bool),
		logger:     logger,
	}
}

// StartShift starts the run loop
func (h *Hub) StartShift() {
	go h.runLoop()
}

// EndShift stops the run loop and disconnects every client
func (h *Hub) EndShift() {
	close(h.close)
	<-h.done
}

func (h *Hub) runLoop() {
	defer close(h.done)

	for {
		select {
		case client := <-h.connect:
			h.logger.WithField("client", client.String()).Debug("client connected")
			h.clients[client] = true
			if last := h.Last(); last != nil {
				client.Send(last)
			}
		case client := <-h.disconnect:
			h.logger.WithField("client", client.String()).Debug("client disconnected")
			if h.clients[client] {
				delete(h.clients, client)
				close(client.send)
			}
		case e := <-h.publish:
			for client := range h.clients {
				if !client.Send(e) {
					h.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped event")
				}
			}
		case <-h.close:
			for client := range h.clients {
				close(client.send)
			}

			h.clients = nil
			return
		}
	}
}

// ClientConnected subscribes the client. The client immediately receives the last event, if any
func (h *Hub) ClientConnected(client *Client) {
	select {
	case h.connect <- client:
	case <-h.done:
		close(client.send)
	}
}

// ClientDisconnected unsubscribes the client and closes its channel
func (h *Hub) ClientDisconnected(client *Client) {
	select {
	case h.disconnect <- client:
	case <-h.done:
	}
}

// Publish records the event as the last one and hands it to every client
func (h *Hub) Publish(e *Event) {
	h.lastLock.Lock()
	h.last = e
	h.lastLock.Unlock()

	select {
	case h.publish <- e:
	default:
		h.logger.WithField("event", e.ID).Warn("feed is backed up, dropped event")
	}
}

// Last returns the most recently published event
func (h *Hub) Last() *Event {
	h.lastLock.RLock()
	defer h.lastLock.RUnlock()

	return h.last
}
