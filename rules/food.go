package rules

import (
	"math/rand"

	"github.com/battlesnakeio/snake2p/model"
)

// DefaultFoodAttempts is how many random cells are tried before a slot is
// left empty.
const DefaultFoodAttempts = 100

// Allocator places food on free cells. Only the side that owns the food
// holds one.
type Allocator struct {
	Grid        model.Grid
	Rand        *rand.Rand
	Palette     []model.Color
	MaxAttempts int
}

// NewAllocator returns an allocator using the default palette.
func NewAllocator(grid model.Grid, rng *rand.Rand) *Allocator {
	return &Allocator{
		Grid:        grid,
		Rand:        rng,
		Palette:     defaultPalette,
		MaxAttempts: DefaultFoodAttempts,
	}
}

// Place fills the first inactive slot. It reports whether a slot was filled,
// false when every slot is active or no free cell was found in time.
func (a *Allocator) Place(foods *model.Foods, s1, s2 *model.Snake) bool {
	for i := range foods {
		if !foods[i].Active {
			return a.fill(foods, i, s1, s2)
		}
	}
	return false
}

// PlaceAll fills every inactive slot and returns how many were filled.
func (a *Allocator) PlaceAll(foods *model.Foods, s1, s2 *model.Snake) int {
	placed := 0
	for i := range foods {
		if foods[i].Active {
			continue
		}
		if a.fill(foods, i, s1, s2) {
			placed++
		}
	}
	return placed
}

func (a *Allocator) fill(foods *model.Foods, index int, s1, s2 *model.Snake) bool {
	attempts := a.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultFoodAttempts
	}
	for tried := 0; tried < attempts; tried++ {
		p := model.Spot{
			X: a.Rand.Intn(a.Grid.Width),
			Y: a.Rand.Intn(a.Grid.Height),
		}
		if occupied(p, s1) || occupied(p, s2) {
			continue
		}
		if _, taken := foods.ActiveAt(p); taken {
			continue
		}
		foods[index] = model.Food{
			Spot:   p,
			Active: true,
			Color:  randomFoodColor(a.Rand, a.Palette),
		}
		return true
	}
	return false
}

func occupied(p model.Spot, s *model.Snake) bool {
	return s != nil && s.Covers(p)
}
