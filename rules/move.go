package rules

import "github.com/battlesnakeio/snake2p/model"

// Steer applies a turn request to the snake. Only a turn onto the other axis
// is accepted, so a snake can never reverse into its own neck. A zero turn
// means no input this tick. It reports whether the heading changed.
func Steer(s *model.Snake, turn model.Heading) bool {
	if turn.IsZero() || !turn.Perpendicular(s.Heading) {
		return false
	}
	s.Heading = turn
	return true
}
