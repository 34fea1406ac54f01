package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpot_Wrap(t *testing.T) {
	g := Grid{Width: 76, Height: 57}
	tests := []struct {
		In       Spot
		Expected Spot
	}{
		{In: Spot{X: -1, Y: 5}, Expected: Spot{X: 75, Y: 5}},
		{In: Spot{X: 76, Y: 5}, Expected: Spot{X: 0, Y: 5}},
		{In: Spot{X: 3, Y: -1}, Expected: Spot{X: 3, Y: 56}},
		{In: Spot{X: 3, Y: 57}, Expected: Spot{X: 3, Y: 0}},
		{In: Spot{X: 10, Y: 10}, Expected: Spot{X: 10, Y: 10}},
	}

	for _, test := range tests {
		got := test.In.Wrap(g)
		require.Equal(t, test.Expected, got, "in: %v", test.In)
		require.True(t, g.Contains(got))
	}
}

func TestHeading_Perpendicular(t *testing.T) {
	require.True(t, Right.Perpendicular(Up))
	require.True(t, Up.Perpendicular(Left))
	require.False(t, Right.Perpendicular(Left))
	require.False(t, Down.Perpendicular(Down))
}

func TestHeading_IsZero(t *testing.T) {
	require.True(t, Heading{}.IsZero())
	require.False(t, Left.IsZero())
}
