// Package protocol defines the messages two peers exchange to keep their
// copies of a round in agreement, how they are put on the wire, and how an
// inbound message is applied to local state.
//
// Every update is a full snapshot. Each snake has exactly one writer, the
// peer that simulates it, while the food and the round result are owned by
// the host.
package protocol

import (
	"fmt"

	"github.com/battlesnakeio/snake2p/model"
)

// Kind is the tag written first in every encoded message.
type Kind uint8

// Message kinds. The values are part of the wire format.
const (
	KindSnakeUpdate Kind = 0
	KindFoodUpdate  Kind = 1
	KindGameOver    Kind = 2
	KindRestart     Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindSnakeUpdate:
		return "snake_update"
	case KindFoodUpdate:
		return "food_update"
	case KindGameOver:
		return "game_over"
	case KindRestart:
		return "restart"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Message is one of SnakeUpdate, FoodUpdate, GameOver or Restart.
type Message interface {
	Kind() Kind
	isMessage()
}

// Epoch numbers the rounds the host has started, beginning at 1. Messages
// that belong to one round carry it so a late message from the round before
// a restart can be told apart.
type Epoch uint32

// SnakeUpdate carries the full state of the sender's own snake.
type SnakeUpdate struct {
	Player model.PlayerID `msgpack:"player"`
	Epoch  Epoch          `msgpack:"epoch"`
	Snake  model.Snake    `msgpack:"snake"`
}

// FoodUpdate carries the full food collection, sent by the food authority.
type FoodUpdate struct {
	Epoch Epoch       `msgpack:"epoch"`
	Foods model.Foods `msgpack:"foods"`
}

// GameOver is the host's verdict on a finished round.
type GameOver struct {
	Winner        model.Winner `msgpack:"winner"`
	Player1Points int          `msgpack:"p1_points"`
	Player2Points int          `msgpack:"p2_points"`
}

// Restart tells the peer the host started a new round.
type Restart struct {
	Epoch Epoch `msgpack:"epoch"`
}

// Kind implements Message.
func (SnakeUpdate) Kind() Kind { return KindSnakeUpdate }

// Kind implements Message.
func (FoodUpdate) Kind() Kind { return KindFoodUpdate }

// Kind implements Message.
func (GameOver) Kind() Kind { return KindGameOver }

// Kind implements Message.
func (Restart) Kind() Kind { return KindRestart }

func (SnakeUpdate) isMessage() {}
func (FoodUpdate) isMessage()  {}
func (GameOver) isMessage()    {}
func (Restart) isMessage()     {}
