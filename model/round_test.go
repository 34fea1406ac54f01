package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound_SnakeByPlayer(t *testing.T) {
	r := &Round{}
	r.Snakes[0].Points = 1
	r.Snakes[1].Points = 2

	require.Equal(t, 1, r.Snake(Player1).Points)
	require.Equal(t, 1, r.Snake(PlayerLocal).Points)
	require.Equal(t, 2, r.Snake(Player2).Points)
	require.Equal(t, 2, r.Opponent(Player1).Points)
	require.Equal(t, 1, r.Opponent(Player2).Points)

	p1, p2 := r.Points()
	require.Equal(t, 1, p1)
	require.Equal(t, 2, p2)
}

func TestFoods(t *testing.T) {
	var f Foods
	f[3] = Food{Spot: Spot{X: 2, Y: 2}, Active: true}
	f[4] = Food{Spot: Spot{X: 9, Y: 9}}

	i, ok := f.ActiveAt(Spot{X: 2, Y: 2})
	require.True(t, ok)
	require.Equal(t, 3, i)

	_, ok = f.ActiveAt(Spot{X: 9, Y: 9})
	require.False(t, ok, "inactive slots are never matched")
	require.Equal(t, 1, f.ActiveCount())

	f.Clear()
	require.Zero(t, f.ActiveCount())
}
