package transport

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// Path is the http path the host accepts peers on.
	Path = "/snake2p"

	eventBuffer = 256
	sendBuffer  = 64
	writeWait   = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Socket is a websocket backed Host. A listening socket accepts exactly one
// peer for its whole lifetime; a dialing socket connects in the background
// and reports the outcome through Poll.
type Socket struct {
	events chan Event
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	conn   *websocket.Conn
	send   chan []byte
	peers  int
	srv    *http.Server
	addr   string
	cancel context.CancelFunc
}

func newSocket() *Socket {
	return &Socket{
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// URL turns a host:port into the websocket url a peer dials. Values that
// already carry a ws:// or wss:// scheme are returned as is.
func URL(addr string) string {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		return addr
	}
	return "ws://" + addr + Path
}

// HostPort adds port to addr when addr names only a host. Websocket urls and
// addresses that already carry a port are returned as is.
func HostPort(addr string, port int) string {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		return addr
	}
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	host := strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Listen creates a host socket bound to addr and waits for a peer in the
// background. The socket is closed once ctx is done.
func Listen(ctx context.Context, addr string) (*Socket, error) {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", addr)
	}

	s := newSocket()
	s.addr = lis.Addr().String()
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.accept)
	s.srv = &http.Server{Handler: mux}

	go func() {
		if err := s.srv.Serve(lis); err != nil && err != http.ErrServerClosed {
			log.WithError(err).WithField("listen", s.addr).Warn("transport server stopped")
		}
	}()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()
	log.WithField("listen", s.addr).Info("waiting for peer")
	return s, nil
}

// Dial creates a client socket and connects to the host at addr in the
// background. The result shows up as EventConnected or EventDisconnected.
func Dial(ctx context.Context, addr string) (*Socket, error) {
	u := URL(addr)
	if err := validateURL(u); err != nil {
		return nil, err
	}

	s := newSocket()
	ctx, s.cancel = context.WithCancel(ctx)
	go func() {
		conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusServiceUnavailable {
				err = ErrGameFull
			}
			log.WithError(err).WithField("url", u).Warn("unable to connect to host")
			s.push(Event{Kind: EventDisconnected, Err: err})
			return
		}
		if !s.attach(conn) {
			conn.Close()
		}
	}()
	return s, nil
}

func validateURL(u string) error {
	host := strings.TrimPrefix(strings.TrimPrefix(u, "ws://"), "wss://")
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	if _, _, err := net.SplitHostPort(host); err != nil {
		return errors.Wrapf(err, "invalid address %q", u)
	}
	return nil
}

// Addr returns the address a listening socket is bound to.
func (s *Socket) Addr() string { return s.addr }

func (s *Socket) accept(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	full := s.peers > 0
	s.mu.Unlock()
	if full {
		http.Error(w, ErrGameFull.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	if !s.attach(conn) {
		conn.Close()
	}
}

// attach makes conn the peer and starts its pumps. It fails once the socket
// is closed or already had a peer.
func (s *Socket) attach(conn *websocket.Conn) bool {
	s.mu.Lock()
	select {
	case <-s.done:
		s.mu.Unlock()
		return false
	default:
	}
	if s.peers > 0 {
		s.mu.Unlock()
		return false
	}
	send := make(chan []byte, sendBuffer)
	s.peers++
	s.conn = conn
	s.send = send
	s.mu.Unlock()

	peer := conn.RemoteAddr().String()
	log.WithField("peer", peer).Info("peer connected")
	s.push(Event{Kind: EventConnected, Peer: peer})

	gone := make(chan struct{})
	go s.readPump(conn, gone)
	go s.writePump(conn, send, gone)
	return true
}

func (s *Socket) readPump(conn *websocket.Conn, gone chan struct{}) {
	defer close(gone)
	peer := conn.RemoteAddr().String()
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			if s.conn == conn {
				s.conn = nil
				s.send = nil
			}
			s.mu.Unlock()
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = nil
			}
			log.WithError(err).WithField("peer", peer).Info("peer disconnected")
			s.push(Event{Kind: EventDisconnected, Peer: peer, Err: err})
			return
		}
		if mt != websocket.BinaryMessage {
			continue
		}
		s.push(Event{Kind: EventReceived, Peer: peer, Payload: data})
	}
}

// writePump owns every data write to conn. A failed write closes conn, the
// read pump then reports the disconnect.
func (s *Socket) writePump(conn *websocket.Conn, send <-chan []byte, gone <-chan struct{}) {
	for {
		select {
		case payload := <-send:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				conn.Close()
				return
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
				log.WithError(err).WithField("peer", conn.RemoteAddr().String()).Warn("unable to write to peer")
				conn.Close()
				return
			}
		case <-gone:
			return
		case <-s.done:
			return
		}
	}
}

func (s *Socket) push(ev Event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// Send implements Host. The payload is handed to the write pump, a peer that
// stops reading fills the queue and later payloads are refused.
func (s *Socket) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrNotConnected
	}
	select {
	case s.send <- payload:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Poll implements Host.
func (s *Socket) Poll() []Event {
	var events []Event
	for {
		select {
		case ev := <-s.events:
			events = append(events, ev)
		default:
			return events
		}
	}
}

// Connected implements Host.
func (s *Socket) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Close implements Host.
func (s *Socket) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)

		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		if s.conn != nil {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			err = s.conn.Close()
			s.conn = nil
			s.send = nil
		}
		srv := s.srv
		s.mu.Unlock()

		if srv != nil {
			if cerr := srv.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	})
	return err
}
