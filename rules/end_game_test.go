package rules

import (
	"testing"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/stretchr/testify/require"
)

func TestDecideWinner(t *testing.T) {
	tests := []struct {
		P1, P2   bool
		Over     bool
		Expected model.Winner
	}{
		{P1: true, P2: true, Over: false, Expected: model.WinnerNone},
		{P1: false, P2: false, Over: true, Expected: model.WinnerTie},
		{P1: false, P2: true, Over: true, Expected: model.WinnerPlayer2},
		{P1: true, P2: false, Over: true, Expected: model.WinnerPlayer1},
	}

	for _, test := range tests {
		r := &model.Round{}
		r.Snakes[0].Alive = test.P1
		r.Snakes[1].Alive = test.P2
		require.Equal(t, test.Over, CheckForGameOver(r))
		require.Equal(t, test.Expected, DecideWinner(r))
	}
}
