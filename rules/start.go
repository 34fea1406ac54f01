package rules

import (
	"github.com/battlesnakeio/snake2p/model"
	uuid "github.com/satori/go.uuid"
)

// Starting cells of the two snakes.
var (
	Player1Start = model.Spot{X: 5, Y: 5}
	Player2Start = model.Spot{X: 40, Y: 30}
)

// StartRound resets the round to its starting state: Player1 green in the
// origin corner, Player2 blue in the opposite corner, no food, no result.
// Every peer applies the same rule so a restart needs no snapshot.
func StartRound(r *model.Round, grid model.Grid) {
	r.ID = uuid.NewV4().String()
	r.Turn = 0
	r.Snakes[0] = model.NewSnake(Player1Start.Wrap(grid), model.DarkGreen, model.Green)
	r.Snakes[1] = model.NewSnake(Player2Start.Wrap(grid), model.DarkBlue, model.Blue)
	r.Foods.Clear()
	r.Over = false
	r.Winner = model.WinnerNone
}
