package rules

import (
	"testing"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/stretchr/testify/require"
)

func TestStartRound(t *testing.T) {
	r := &model.Round{Over: true, Winner: model.WinnerTie, Turn: 40}
	r.Foods[0].Active = true
	grid := model.Grid{Width: 76, Height: 57}

	StartRound(r, grid)
	require.NotEmpty(t, r.ID)
	require.False(t, r.Over)
	require.Equal(t, model.WinnerNone, r.Winner)
	require.Zero(t, r.Turn)
	require.Zero(t, r.Foods.ActiveCount())

	p1 := r.Snake(model.Player1)
	require.Equal(t, model.Spot{X: 5, Y: 5}, p1.Head)
	require.Equal(t, model.DarkGreen, p1.HeadColor)
	require.Equal(t, model.Green, p1.BodyColor)
	require.Equal(t, 1, p1.Size())
	require.True(t, p1.Alive)

	p2 := r.Snake(model.Player2)
	require.Equal(t, model.Spot{X: 40, Y: 30}, p2.Head)
	require.Equal(t, model.DarkBlue, p2.HeadColor)
	require.Equal(t, model.Blue, p2.BodyColor)
	require.Equal(t, model.Right, p2.Heading)
}

func TestStartRoundSmallGrid(t *testing.T) {
	r := &model.Round{}
	grid := model.Grid{Width: 30, Height: 20}
	StartRound(r, grid)
	require.True(t, grid.Contains(r.Snakes[1].Head))
}
