package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(Spot{X: 5, Y: 5}, DarkGreen, Green)
	require.True(t, s.Alive)
	require.Equal(t, 1, s.Size())
	require.Equal(t, Right, s.Heading)
	require.Zero(t, s.Points)
}

func TestSnake_ShiftAndGrow(t *testing.T) {
	s := NewSnake(Spot{X: 5, Y: 5}, DarkGreen, Green)
	s.Body = []Spot{{X: 4, Y: 5}, {X: 3, Y: 5}}

	dropped := s.Shift()
	require.Equal(t, Spot{X: 3, Y: 5}, dropped)
	require.Equal(t, []Spot{{X: 5, Y: 5}, {X: 4, Y: 5}}, s.Body)

	require.True(t, s.Grow(dropped))
	require.Equal(t, 3, s.Size())
	require.Equal(t, Spot{X: 3, Y: 5}, s.Body[2])
}

func TestSnake_GrowCapped(t *testing.T) {
	s := NewSnake(Spot{}, DarkGreen, Green)
	s.Body = make([]Spot, MaxTail)
	require.False(t, s.Grow(Spot{X: 1}))
	require.Equal(t, MaxTail, s.Size())
}

func TestSnake_Covers(t *testing.T) {
	s := NewSnake(Spot{X: 5, Y: 5}, DarkGreen, Green)
	s.Body = []Spot{{X: 4, Y: 5}}
	require.True(t, s.Covers(Spot{X: 5, Y: 5}))
	require.True(t, s.Covers(Spot{X: 4, Y: 5}))
	require.False(t, s.Covers(Spot{X: 6, Y: 5}))
	require.False(t, s.BodyCovers(Spot{X: 5, Y: 5}))
}

func TestSnake_Clone(t *testing.T) {
	s := NewSnake(Spot{X: 5, Y: 5}, DarkGreen, Green)
	c := s.Clone()
	c.Body[0] = Spot{X: 1, Y: 1}
	require.Equal(t, Spot{X: 5, Y: 5}, s.Body[0])
}
