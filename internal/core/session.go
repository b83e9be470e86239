package core

// DefaultSessionBuffer is the channel capacity used when none is configured.
const DefaultSessionBuffer = 8

// Session is one live transport connection as seen by the core layer.
// Events is the outbound handle for every identity registered through this
// session; the hub writes to it but never closes it — the channel belongs
// to the transport.
type Session struct {
	ConnID   string
	Commands chan *Command
	Events   chan *Event
}

// NewSession constructs a session with initialized channels.
func NewSession(connID string, buffer int) *Session {
	if buffer <= 0 {
		buffer = DefaultSessionBuffer
	}
	return &Session{
		ConnID:   connID,
		Commands: make(chan *Command, buffer),
		Events:   make(chan *Event, buffer),
	}
}
