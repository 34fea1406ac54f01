package transport

import "sync"

// PipeEnd is one end of an in-memory connection made by Pipe. It behaves
// like a connected Socket without touching the network.
type PipeEnd struct {
	mu        sync.Mutex
	queue     []Event
	peer      *PipeEnd
	connected bool
}

// Pipe returns two connected ends. Each end starts with an EventConnected
// queued, as a socket would after its handshake.
func Pipe() (*PipeEnd, *PipeEnd) {
	a := &PipeEnd{connected: true}
	b := &PipeEnd{connected: true}
	a.peer, b.peer = b, a
	a.queue = []Event{{Kind: EventConnected, Peer: "pipe"}}
	b.queue = []Event{{Kind: EventConnected, Peer: "pipe"}}
	return a, b
}

func (p *PipeEnd) deliver(ev Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, ev)
}

// Send implements Host.
func (p *PipeEnd) Send(payload []byte) error {
	p.mu.Lock()
	connected := p.connected
	p.mu.Unlock()
	if !connected {
		return ErrNotConnected
	}
	data := append([]byte(nil), payload...)
	p.peer.deliver(Event{Kind: EventReceived, Peer: "pipe", Payload: data})
	return nil
}

// Poll implements Host.
func (p *PipeEnd) Poll() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := p.queue
	p.queue = nil
	return events
}

// Connected implements Host.
func (p *PipeEnd) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

// Close implements Host. The other end sees EventDisconnected.
func (p *PipeEnd) Close() error {
	p.mu.Lock()
	was := p.connected
	p.connected = false
	p.mu.Unlock()
	if !was {
		return nil
	}

	p.peer.mu.Lock()
	p.peer.connected = false
	p.peer.queue = append(p.peer.queue, Event{Kind: EventDisconnected, Peer: "pipe"})
	p.peer.mu.Unlock()
	return nil
}
