// Package model holds the value types shared by the simulation, the
// replication protocol and rendering: spots, snakes, food and the round that
// aggregates them.
package model

import "fmt"

// PlayerID identifies which snake a process controls.
type PlayerID int

const (
	// PlayerLocal is used when one process plays both snakes.
	PlayerLocal PlayerID = 0
	// Player1 is the host, green, starting in the origin corner.
	Player1 PlayerID = 1
	// Player2 is the joiner, blue, starting in the opposite corner.
	Player2 PlayerID = 2
)

func (p PlayerID) String() string {
	switch p {
	case PlayerLocal:
		return "local"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return fmt.Sprintf("player(%d)", int(p))
}

// Winner is the result of a finished round.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerTie
	WinnerPlayer1
	WinnerPlayer2
)

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerTie:
		return "tie"
	case WinnerPlayer1:
		return "player1"
	case WinnerPlayer2:
		return "player2"
	}
	return fmt.Sprintf("winner(%d)", int(w))
}

// Round is the state of one game: both snakes, the food and the result.
// Snakes[0] belongs to Player1 and Snakes[1] to Player2 on every peer.
type Round struct {
	ID     string   `json:"id"`
	Turn   int64    `json:"turn"`
	Snakes [2]Snake `json:"snakes"`
	Foods  Foods    `json:"foods"`
	Over   bool     `json:"over"`
	Winner Winner   `json:"winner"`
}

// Snake returns the snake owned by id. PlayerLocal maps to Player1's snake.
func (r *Round) Snake(id PlayerID) *Snake {
	if id == Player2 {
		return &r.Snakes[1]
	}
	return &r.Snakes[0]
}

// Opponent returns the snake that id does not own.
func (r *Round) Opponent(id PlayerID) *Snake {
	if id == Player2 {
		return &r.Snakes[0]
	}
	return &r.Snakes[1]
}

// Points returns the point totals of Player1 and Player2.
func (r *Round) Points() (int, int) {
	return r.Snakes[0].Points, r.Snakes[1].Points
}
