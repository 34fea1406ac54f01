// Package transport moves opaque payloads between the two peers of a game.
// Delivery is reliable and ordered and Poll never blocks, so the game loop
// can drain whatever arrived since the last tick and carry on.
package transport

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotConnected is returned by Send when there is no peer.
	ErrNotConnected = errors.New("transport: no peer connected")
	// ErrGameFull is reported to a second peer trying to join a host.
	ErrGameFull = errors.New("transport: game is full")
	// ErrSendQueueFull is returned by Send when the peer is not keeping up.
	ErrSendQueueFull = errors.New("transport: send queue is full")
)

// EventKind is what happened on the connection.
type EventKind int

const (
	// EventConnected fires once the handshake with the peer completes.
	EventConnected EventKind = iota
	// EventDisconnected fires when the peer goes away or a connect attempt
	// fails, Err holds the reason when there is one.
	EventDisconnected
	// EventReceived carries one payload from the peer.
	EventReceived
)

func (k EventKind) String() string {
	switch k {
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventReceived:
		return "received"
	}
	return "unknown"
}

// Event is one item returned by Poll.
type Event struct {
	Kind    EventKind
	Peer    string
	Payload []byte
	Err     error
}

// Host is one end of a game connection.
type Host interface {
	// Send queues payload for the peer without blocking. Queued payloads are
	// delivered reliably and in order.
	Send(payload []byte) error
	// Poll returns every event queued since the last call without blocking.
	Poll() []Event
	// Connected reports whether a peer is currently attached.
	Connected() bool
	// Close tears down the connection and any listener.
	Close() error
}
