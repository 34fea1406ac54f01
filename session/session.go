// Package session runs one player's side of a game. It owns the local copy
// of the round, decides which snakes this process simulates, exchanges
// snapshots with the peer and tracks the menu, waiting, playing and game over
// screens.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/battlesnakeio/snake2p/protocol"
	"github.com/battlesnakeio/snake2p/rules"
	"github.com/battlesnakeio/snake2p/transport"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Role is how this process takes part in the game.
type Role int

const (
	RoleUnconnected Role = iota
	// RoleLocalBoth plays both snakes on one keyboard.
	RoleLocalBoth
	// RoleNetworkHost plays Player1 and owns the food and the result.
	RoleNetworkHost
	// RoleNetworkJoiner plays Player2.
	RoleNetworkJoiner
)

func (r Role) String() string {
	switch r {
	case RoleLocalBoth:
		return "local"
	case RoleNetworkHost:
		return "host"
	case RoleNetworkJoiner:
		return "joiner"
	}
	return "unconnected"
}

// State is the screen the session is on.
type State int

const (
	StateUnconnected State = iota
	// StateWaiting is a host waiting for its peer or a join handshake in
	// flight.
	StateWaiting
	StateConnected
	StateInRound
	StateRoundOver
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateConnected:
		return "connected"
	case StateInRound:
		return "in_round"
	case StateRoundOver:
		return "round_over"
	}
	return "unconnected"
}

// Recorder receives the round after every tick that changed it.
type Recorder interface {
	Record(r *model.Round) error
}

// ListenFunc creates the host side of a connection. The listener goes away
// when ctx is done.
type ListenFunc func(ctx context.Context, addr string) (transport.Host, error)

// DialFunc creates the joining side of a connection.
type DialFunc func(ctx context.Context, addr string) (transport.Host, error)

// Config holds everything a Session needs from the outside.
type Config struct {
	Grid         model.Grid
	TickRate     rate.Limit
	FoodAttempts int
	// ListenAddr is where Host listens, JoinAddr is where Join connects when
	// no address is given.
	ListenAddr string
	JoinAddr   string
	// Port is added to a join address that has none.
	Port       int
	Listen     ListenFunc
	Dial       DialFunc
	Recorder   Recorder
	Rand       *rand.Rand
}

// DefaultListen listens with the websocket transport and instruments it.
func DefaultListen(ctx context.Context, addr string) (transport.Host, error) {
	s, err := transport.Listen(ctx, addr)
	if err != nil {
		return nil, err
	}
	return transport.Instrument(s), nil
}

// DefaultDial dials with the websocket transport and instruments it.
func DefaultDial(ctx context.Context, addr string) (transport.Host, error) {
	s, err := transport.Dial(ctx, addr)
	if err != nil {
		return nil, err
	}
	return transport.Instrument(s), nil
}

// Session is one player's side of a game. It is driven by a single
// goroutine, either through Run or by calling Tick and Render directly.
type Session struct {
	cfg       Config
	role      Role
	state     State
	self      model.PlayerID
	host      transport.Host
	connected bool
	round     model.Round
	status    string
	alloc     *rules.Allocator
	log       *log.Entry

	// epoch is the round this side plays. The host bumps it on every start,
	// a joiner takes it from the host. hostEpoch is the newest round a joiner
	// has heard of, zero until the host first starts.
	epoch     protocol.Epoch
	hostEpoch protocol.Epoch
}

// New returns an unconnected session showing the menu.
func New(cfg Config) *Session {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Listen == nil {
		cfg.Listen = DefaultListen
	}
	if cfg.Dial == nil {
		cfg.Dial = DefaultDial
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 10
	}
	alloc := rules.NewAllocator(cfg.Grid, cfg.Rand)
	if cfg.FoodAttempts > 0 {
		alloc.MaxAttempts = cfg.FoodAttempts
	}
	return &Session{
		cfg:   cfg,
		alloc: alloc,
		log:   log.WithField("role", RoleUnconnected.String()),
	}
}

// Role returns how this process takes part in the game.
func (s *Session) Role() Role { return s.role }

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Self returns the player this process controls.
func (s *Session) Self() model.PlayerID { return s.self }

// Connected reports whether a peer is attached.
func (s *Session) Connected() bool { return s.connected }

// Status returns the status line shown to the player.
func (s *Session) Status() string { return s.status }

// Round returns the local copy of the round. Callers must not modify it.
func (s *Session) Round() *model.Round { return &s.round }

func (s *Session) setRole(r Role, self model.PlayerID) {
	s.role = r
	s.self = self
	s.log = log.WithFields(log.Fields{"role": r.String(), "player": self.String()})
}

// Host starts listening for a peer and becomes Player1. On failure the
// session stays unconnected with the reason on the status line. The listener
// is closed once ctx is done.
func (s *Session) Host(ctx context.Context) error {
	if s.role != RoleUnconnected {
		return nil
	}
	h, err := s.cfg.Listen(ctx, s.cfg.ListenAddr)
	if err != nil {
		s.status = fmt.Sprintf("Unable to host: %v", err)
		log.WithError(err).WithField("listen", s.cfg.ListenAddr).Error("unable to host game")
		return err
	}
	s.host = h
	s.setRole(RoleNetworkHost, model.Player1)
	s.state = StateWaiting
	s.status = "Waiting for player 2..."
	s.log.WithField("listen", s.cfg.ListenAddr).Info("hosting game")
	return nil
}

// Join connects to a host and becomes Player2. The handshake completes in
// the background, a failure shows up on a later tick and returns the
// session to the menu. An empty address uses the configured default, an
// address without a port gets the configured port.
func (s *Session) Join(ctx context.Context, addr string) error {
	if s.role != RoleUnconnected {
		return nil
	}
	if addr == "" {
		addr = s.cfg.JoinAddr
	}
	if s.cfg.Port > 0 {
		addr = transport.HostPort(addr, s.cfg.Port)
	}
	h, err := s.cfg.Dial(ctx, addr)
	if err != nil {
		s.status = fmt.Sprintf("Unable to join: %v", err)
		log.WithError(err).WithField("address", addr).Error("unable to join game")
		return err
	}
	s.host = h
	s.setRole(RoleNetworkJoiner, model.Player2)
	s.state = StateWaiting
	s.status = fmt.Sprintf("Connecting to %s...", addr)
	s.log.WithField("address", addr).Info("joining game")
	return nil
}

// PlayLocal starts a round with both snakes on this keyboard.
func (s *Session) PlayLocal() {
	if s.role != RoleUnconnected {
		return
	}
	s.setRole(RoleLocalBoth, model.PlayerLocal)
	s.connected = true
	s.status = ""
	s.StartRound()
}

// StartRound puts both snakes on their starting cells. The host and a local
// game also fill the board with food, the host broadcasting it. A joiner
// can only start once the host has, and joins the host's current round
// keeping whatever food the host already sent.
func (s *Session) StartRound() {
	switch s.role {
	case RoleUnconnected:
		return
	case RoleNetworkJoiner:
		if s.hostEpoch == 0 {
			s.log.Debug("host has not started yet")
			return
		}
		s.epoch = s.hostEpoch
		foods := s.round.Foods
		rules.StartRound(&s.round, s.cfg.Grid)
		s.round.Foods = foods
	default:
		s.epoch++
		rules.StartRound(&s.round, s.cfg.Grid)
		placed := s.alloc.PlaceAll(&s.round.Foods, &s.round.Snakes[0], &s.round.Snakes[1])
		s.log.WithField("food", placed).Debug("placed food")
		if s.role == RoleNetworkHost {
			s.send(protocol.FoodUpdate{Epoch: s.epoch, Foods: s.round.Foods})
		}
	}
	s.state = StateInRound
	s.log.WithFields(log.Fields{"round": s.round.ID, "epoch": s.epoch}).Info("round started")
}

// Restart starts a new round after one ended. Only the host and a local game
// can restart, the host tells its peer first.
func (s *Session) Restart() {
	if s.state != StateRoundOver {
		return
	}
	switch s.role {
	case RoleNetworkHost:
		// StartRound below moves to the next epoch.
		s.send(protocol.Restart{Epoch: s.epoch + 1})
	case RoleLocalBoth:
	default:
		return
	}
	s.log.WithField("round", s.round.ID).Info("restarting")
	s.StartRound()
}

// Close tears down the transport.
func (s *Session) Close() error {
	if s.host == nil {
		return nil
	}
	err := s.host.Close()
	s.host = nil
	s.connected = false
	return err
}

func (s *Session) send(m protocol.Message) {
	if s.host == nil || !s.connected {
		return
	}
	data, err := protocol.Encode(m)
	if err != nil {
		s.log.WithError(err).WithField("kind", m.Kind().String()).Error("unable to encode message")
		return
	}
	if err := s.host.Send(data); err != nil {
		s.log.WithError(err).WithField("kind", m.Kind().String()).Warn("unable to send message")
		return
	}
	messagesSent.WithLabelValues(m.Kind().String()).Inc()
}

// finish ends the round on the side that decides the result and tells the
// peer when there is one.
func (s *Session) finish() {
	s.round.Over = true
	s.round.Winner = rules.DecideWinner(&s.round)
	s.state = StateRoundOver
	p1, p2 := s.round.Points()
	s.log.WithFields(log.Fields{
		"round":  s.round.ID,
		"winner": s.round.Winner.String(),
		"p1":     p1,
		"p2":     p2,
	}).Info("game over")
	if s.role == RoleNetworkHost {
		s.send(protocol.GameOver{Winner: s.round.Winner, Player1Points: p1, Player2Points: p2})
	}
}
