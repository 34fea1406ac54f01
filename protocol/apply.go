package protocol

import (
	"github.com/battlesnakeio/snake2p/model"
	"github.com/battlesnakeio/snake2p/rules"
)

// Effect reports what applying a message changed.
type Effect int

const (
	EffectIgnored Effect = iota
	EffectSnakeReplaced
	EffectFoodReplaced
	EffectGameOver
	EffectRestarted
)

func (e Effect) String() string {
	switch e {
	case EffectSnakeReplaced:
		return "snake_replaced"
	case EffectFoodReplaced:
		return "food_replaced"
	case EffectGameOver:
		return "game_over"
	case EffectRestarted:
		return "restarted"
	}
	return "ignored"
}

// Apply applies an inbound message to the local round. self is the player
// this process controls; a snake update for our own snake is dropped since
// we are its only writer. A snake update replaces the sender's snake
// wholesale, a food update replaces the whole food collection, a game over
// overrides the local result and a restart rebuilds the starting round with
// no food, the host's food update that follows fills it.
func Apply(m Message, r *model.Round, self model.PlayerID, grid model.Grid) Effect {
	switch msg := m.(type) {
	case SnakeUpdate:
		if msg.Player == self || (msg.Player != model.Player1 && msg.Player != model.Player2) {
			return EffectIgnored
		}
		s := msg.Snake.Clone()
		if len(s.Body) > model.MaxTail {
			s.Body = s.Body[:model.MaxTail]
		}
		*r.Snake(msg.Player) = s
		return EffectSnakeReplaced
	case FoodUpdate:
		r.Foods = msg.Foods
		return EffectFoodReplaced
	case GameOver:
		r.Over = true
		r.Winner = msg.Winner
		return EffectGameOver
	case Restart:
		rules.StartRound(r, grid)
		return EffectRestarted
	}
	return EffectIgnored
}
