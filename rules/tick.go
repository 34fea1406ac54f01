package rules

import (
	"github.com/battlesnakeio/snake2p/model"
	log "github.com/sirupsen/logrus"
)

// Outcome reports what happened to a snake during one tick.
type Outcome struct {
	// Ate is the number of food cells consumed.
	Ate int
	// FoodChanged is set when this side is the food authority and the food
	// collection was modified, the caller should broadcast it.
	FoodChanged bool
	Died        bool
	HeadOn      bool
	RoundOver   bool
	Cause       string
}

// Advance runs one tick for a snake under local control: steer, shift the
// body, move and wrap the head, eat, then check for death. alloc is only
// passed by the side that owns the food, a nil alloc eats without refilling.
func Advance(grid model.Grid, s, other *model.Snake, foods *model.Foods, turn model.Heading, alloc *Allocator) Outcome {
	var out Outcome
	if !s.Alive {
		return out
	}

	Steer(s, turn)
	dropped := s.Shift()
	s.Head = s.Head.Add(s.Heading).Wrap(grid)

	for i := range foods {
		f := &foods[i]
		if !f.Active || !f.Spot.Equals(s.Head) {
			continue
		}
		f.Active = false
		s.Grow(dropped)
		s.Points++
		out.Ate++
		log.WithFields(log.Fields{
			"Food":   f.Spot,
			"Points": s.Points,
			"Size":   s.Size(),
		}).Debug("snake ate")

		if alloc != nil {
			alloc.Place(foods, s, other)
			out.FoodChanged = true
		}
	}

	checkForDeath(s, other, &out)
	return out
}

// ConsumeRemote eats the food under a snake that was simulated by the peer.
// Only the food authority calls it, after applying the peer's snapshot, so
// food eaten on the other side is removed and replaced here as well. Points
// are not touched, the peer already counted them. It reports whether the food
// collection changed.
func ConsumeRemote(foods *model.Foods, remote, local *model.Snake, alloc *Allocator) bool {
	if !remote.Alive {
		return false
	}
	i, ok := foods.ActiveAt(remote.Head)
	if !ok {
		return false
	}
	foods[i].Active = false
	if alloc != nil {
		alloc.Place(foods, local, remote)
	}
	return true
}
