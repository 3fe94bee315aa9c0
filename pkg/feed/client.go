package feed

// Client is a subscriber to the decision feed
type Client struct {
	name string
	send chan *Event
}

// NewClient returns a new client object
func NewClient(name string) *Client {
	return &Client{
		name: name,
		send: make(chan *Event, 64),
	}
}

// Send queues the event. A client that is not keeping up misses the event
func (c *Client) Send(e *Event) bool {
	select {
	case c.send <- e:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel. It is closed once the client is disconnected
func (c *Client) SendChan() <-chan *Event {
	return c.send
}

func (c *Client) String() string {
	return c.name
}
