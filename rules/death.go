package rules

import "github.com/battlesnakeio/snake2p/model"

// checkForDeath runs the collision checks for s after it has moved, in order:
// self collision, head on collision, collision with the other snake's body.
// Checks against a dead opponent are skipped.
func checkForDeath(s, other *model.Snake, out *Outcome) {
	if deathBySelfCollision(s) {
		kill(s, out, DeathCauseSnakeSelfCollision)
	}
	if other == nil || !other.Alive {
		return
	}
	if deathByHeadCollision(s, other) {
		kill(s, out, DeathCauseHeadToHeadCollision)
		other.Alive = false
		out.HeadOn = true
	}
	if deathByBodyCollision(s.Head, other) {
		kill(s, out, DeathCauseSnakeCollision)
	}
}

func kill(s *model.Snake, out *Outcome, cause string) {
	s.Alive = false
	out.Died = true
	out.RoundOver = true
	if out.Cause == "" {
		out.Cause = cause
	}
}

func deathBySelfCollision(s *model.Snake) bool {
	return s.BodyCovers(s.Head)
}

func deathByHeadCollision(s, other *model.Snake) bool {
	return s.Head.Equals(other.Head)
}

func deathByBodyCollision(head model.Spot, other *model.Snake) bool {
	return other.BodyCovers(head)
}
