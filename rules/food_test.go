package rules

import (
	"math/rand"
	"testing"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/stretchr/testify/require"
)

func requireNoDuplicateFood(t *testing.T, foods *model.Foods, snakes ...*model.Snake) {
	seen := map[model.Spot]bool{}
	for _, f := range foods {
		if !f.Active {
			continue
		}
		require.False(t, seen[f.Spot], "duplicate food at %v", f.Spot)
		seen[f.Spot] = true
		for _, s := range snakes {
			require.False(t, s.Covers(f.Spot), "food under snake at %v", f.Spot)
		}
	}
}

func TestPlaceAll(t *testing.T) {
	grid := model.Grid{Width: 76, Height: 57}
	r := &model.Round{}
	StartRound(r, grid)
	alloc := NewAllocator(grid, rand.New(rand.NewSource(42)))

	placed := alloc.PlaceAll(&r.Foods, &r.Snakes[0], &r.Snakes[1])
	require.Equal(t, model.FoodSlots, placed)
	require.Equal(t, model.FoodSlots, r.Foods.ActiveCount())
	requireNoDuplicateFood(t, &r.Foods, &r.Snakes[0], &r.Snakes[1])

	for _, f := range r.Foods {
		require.Contains(t, defaultPalette, f.Color)
		require.True(t, grid.Contains(f.Spot))
	}
}

func TestPlaceFillsFirstInactiveSlot(t *testing.T) {
	grid := model.Grid{Width: 10, Height: 10}
	alloc := NewAllocator(grid, rand.New(rand.NewSource(7)))
	s1 := testSnake(model.Spot{X: 1, Y: 1}, model.Right)
	s2 := testSnake(model.Spot{X: 8, Y: 8}, model.Left)

	foods := &model.Foods{}
	for i := 0; i < 5; i++ {
		foods[i] = model.Food{Spot: model.Spot{X: i, Y: 0}, Active: true}
	}

	for i := 0; i < 20; i++ {
		require.True(t, alloc.Place(foods, s1, s2))
		requireNoDuplicateFood(t, foods, s1, s2)
	}
	require.Equal(t, 25, foods.ActiveCount())
	require.True(t, foods[5].Active)
}

func TestPlaceExhaustedLeavesSlotInactive(t *testing.T) {
	// A 1x2 grid fully covered by the two snakes has no free cell.
	grid := model.Grid{Width: 1, Height: 2}
	alloc := NewAllocator(grid, rand.New(rand.NewSource(1)))
	s1 := testSnake(model.Spot{X: 0, Y: 0}, model.Right)
	s2 := testSnake(model.Spot{X: 0, Y: 1}, model.Right)

	foods := &model.Foods{}
	require.False(t, alloc.Place(foods, s1, s2))
	require.Zero(t, alloc.PlaceAll(foods, s1, s2))
	require.Zero(t, foods.ActiveCount())
}

func TestPlaceAllFull(t *testing.T) {
	grid := model.Grid{Width: 76, Height: 57}
	alloc := NewAllocator(grid, rand.New(rand.NewSource(1)))
	foods := &model.Foods{}
	alloc.PlaceAll(foods, nil, nil)
	require.False(t, alloc.Place(foods, nil, nil), "no inactive slot left")
}
