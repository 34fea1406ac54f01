package rules

import (
	"testing"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/stretchr/testify/require"
)

func TestSteer(t *testing.T) {
	headings := []model.Heading{model.Up, model.Down, model.Left, model.Right}

	for _, current := range headings {
		for _, turn := range append(headings, model.Heading{}) {
			s := testSnake(model.Spot{X: 5, Y: 5}, current)
			changed := Steer(s, turn)

			if turn.IsZero() || !turn.Perpendicular(current) {
				require.False(t, changed, "%s -> %s", current, turn)
				require.Equal(t, current, s.Heading, "%s -> %s", current, turn)
				continue
			}
			require.True(t, changed, "%s -> %s", current, turn)
			require.Equal(t, turn, s.Heading)
		}
	}
}

func TestSteerNeverReverses(t *testing.T) {
	s := testSnake(model.Spot{X: 5, Y: 5}, model.Right)
	require.False(t, Steer(s, model.Left))
	require.Equal(t, model.Right, s.Heading)
}
