package rules

import "github.com/battlesnakeio/snake2p/model"

// CheckForGameOver checks if the round has ended, which is as soon as either
// snake is dead.
func CheckForGameOver(r *model.Round) bool {
	return !r.Snakes[0].Alive || !r.Snakes[1].Alive
}

// DecideWinner computes the winner of a finished round. Both dead is a tie,
// otherwise the survivor wins. A round with both snakes alive has no winner.
func DecideWinner(r *model.Round) model.Winner {
	p1, p2 := r.Snakes[0].Alive, r.Snakes[1].Alive
	switch {
	case !p1 && !p2:
		return model.WinnerTie
	case !p1:
		return model.WinnerPlayer2
	case !p2:
		return model.WinnerPlayer1
	}
	return model.WinnerNone
}
