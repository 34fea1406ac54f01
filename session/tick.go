package session

import (
	"context"

	"github.com/battlesnakeio/snake2p/display"
	"github.com/battlesnakeio/snake2p/model"
	"github.com/battlesnakeio/snake2p/protocol"
	"github.com/battlesnakeio/snake2p/rules"
	"github.com/battlesnakeio/snake2p/transport"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Tick runs one frame of the game: menu keys, everything the peer sent since
// the last tick, the local simulation step then the start and restart keys.
// Snakes only move on ticks that began and stayed in a round.
func (s *Session) Tick(ctx context.Context, in Input) {
	timer := prometheus.NewTimer(tickDuration.WithLabelValues(s.role.String()))
	defer timer.ObserveDuration()

	before := s.state
	s.handleMenu(ctx, in)
	s.drain()
	if before == StateInRound && s.state == StateInRound {
		s.simulate(in)
	}

	switch s.state {
	case StateConnected:
		if in.Pressed(display.KeySpace) {
			s.StartRound()
		}
	case StateRoundOver:
		if in.Pressed(display.KeyR) {
			s.Restart()
		}
	}
	s.record()
}

func (s *Session) handleMenu(ctx context.Context, in Input) {
	if s.state != StateUnconnected {
		return
	}
	switch {
	case in.Pressed(display.KeyH):
		s.Host(ctx)
	case in.Pressed(display.KeyJ):
		s.Join(ctx, "")
	case in.Pressed(display.KeyL):
		s.PlayLocal()
	}
}

// drain applies every event the transport queued, in arrival order.
func (s *Session) drain() {
	if s.host == nil {
		return
	}
	for _, ev := range s.host.Poll() {
		switch ev.Kind {
		case transport.EventConnected:
			s.connected = true
			if s.state == StateWaiting {
				s.state = StateConnected
			}
			s.status = ""
			s.log.WithField("peer", ev.Peer).Info("peer connected")
		case transport.EventDisconnected:
			s.disconnected(ev.Err)
		case transport.EventReceived:
			s.receive(ev.Payload)
		}
	}
}

func (s *Session) disconnected(err error) {
	if s.state == StateWaiting {
		s.log.WithError(err).Warn("unable to join game")
		s.Close()
		s.setRole(RoleUnconnected, model.PlayerLocal)
		s.state = StateUnconnected
		s.status = "Unable to join game"
		if err != nil {
			s.status += ": " + err.Error()
		}
		return
	}
	s.connected = false
	s.status = "Peer disconnected"
	s.log.WithError(err).Warn("peer disconnected")
}

func (s *Session) receive(payload []byte) {
	msg, err := protocol.Decode(payload)
	if err != nil {
		s.log.WithError(err).Debug("ignoring undecodable message")
		return
	}
	kind := msg.Kind().String()
	messagesReceived.WithLabelValues(kind).Inc()

	if !s.accepts(msg) {
		s.log.WithFields(log.Fields{"kind": kind, "state": s.state.String()}).Debug("ignoring message")
		return
	}

	switch m := msg.(type) {
	case protocol.FoodUpdate:
		s.hostEpoch = m.Epoch
	case protocol.Restart:
		s.hostEpoch = m.Epoch
		s.epoch = m.Epoch
	}

	switch protocol.Apply(msg, &s.round, s.self, s.cfg.Grid) {
	case protocol.EffectGameOver:
		s.state = StateRoundOver
		s.log.WithFields(log.Fields{
			"round":  s.round.ID,
			"winner": s.round.Winner.String(),
		}).Info("host declared game over")
	case protocol.EffectRestarted:
		s.state = StateInRound
		s.log.WithFields(log.Fields{"round": s.round.ID, "epoch": s.epoch}).Info("host restarted round")
	case protocol.EffectSnakeReplaced:
		if s.role == RoleNetworkHost && s.state == StateInRound {
			s.settleRemote()
		}
	}
}

// accepts filters messages by who may send them and when. Food and the
// result belong to the host so the host ignores them from its peer, and a
// result or restart only means something once this side is playing. The host
// drops snapshots from any round but its current one.
func (s *Session) accepts(msg protocol.Message) bool {
	switch m := msg.(type) {
	case protocol.SnakeUpdate:
		return s.role != RoleNetworkHost || m.Epoch == s.epoch
	case protocol.FoodUpdate:
		return s.role == RoleNetworkJoiner
	case protocol.GameOver, protocol.Restart:
		return s.role == RoleNetworkJoiner && (s.state == StateInRound || s.state == StateRoundOver)
	}
	return false
}

// settleRemote runs on the host after the joiner's snake was replaced. Food
// the joiner ate is taken off the board and replaced, and a dead joiner ends
// the round.
func (s *Session) settleRemote() {
	remote := s.round.Opponent(s.self)
	local := s.round.Snake(s.self)
	if rules.ConsumeRemote(&s.round.Foods, remote, local, s.alloc) {
		s.send(protocol.FoodUpdate{Epoch: s.epoch, Foods: s.round.Foods})
	}
	if !remote.Alive {
		s.finish()
	}
}

func (s *Session) simulate(in Input) {
	s.round.Turn++
	ticksTotal.WithLabelValues(s.role.String()).Inc()

	switch s.role {
	case RoleLocalBoth:
		p1, p2 := s.round.Snake(model.Player1), s.round.Snake(model.Player2)
		out := s.advance(model.Player1, p1, p2, in, s.alloc)
		if !out.RoundOver {
			s.advance(model.Player2, p2, p1, in, s.alloc)
		}
		if rules.CheckForGameOver(&s.round) {
			s.finish()
		}

	case RoleNetworkHost:
		me, them := s.round.Snake(s.self), s.round.Opponent(s.self)
		out := s.advance(s.self, me, them, in, s.alloc)
		if out.FoodChanged {
			s.send(protocol.FoodUpdate{Epoch: s.epoch, Foods: s.round.Foods})
		}
		if out.RoundOver {
			s.finish()
			return
		}
		s.send(protocol.SnakeUpdate{Player: s.self, Epoch: s.epoch, Snake: *me})

	case RoleNetworkJoiner:
		me, them := s.round.Snake(s.self), s.round.Opponent(s.self)
		out := s.advance(s.self, me, them, in, nil)
		// The final snapshot on the tick we die is how the host learns of it.
		s.send(protocol.SnakeUpdate{Player: s.self, Epoch: s.epoch, Snake: *me})
		if out.RoundOver {
			s.round.Over = true
			s.round.Winner = rules.DecideWinner(&s.round)
			s.state = StateRoundOver
		}
	}
}

func (s *Session) advance(p model.PlayerID, me, them *model.Snake, in Input, alloc *rules.Allocator) rules.Outcome {
	turn := schemeFor(s.role, p).turn(in, me)
	out := rules.Advance(s.cfg.Grid, me, them, &s.round.Foods, turn, alloc)
	if out.Died {
		s.log.WithFields(log.Fields{
			"round":  s.round.ID,
			"turn":   s.round.Turn,
			"snake":  p.String(),
			"cause":  out.Cause,
			"points": me.Points,
		}).Info("snake died")
	}
	return out
}

func (s *Session) record() {
	if s.cfg.Recorder == nil || s.round.ID == "" {
		return
	}
	if s.state != StateInRound && s.state != StateRoundOver {
		return
	}
	if err := s.cfg.Recorder.Record(&s.round); err != nil {
		s.log.WithError(err).Warn("unable to record round")
	}
}
