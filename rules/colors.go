package rules

import (
	"math/rand"

	"github.com/battlesnakeio/snake2p/model"
)

var defaultPalette = []model.Color{
	model.Red,
	model.Orange,
	model.Yellow,
	model.Pink,
	model.Purple,
	model.Gold,
	model.SkyBlue,
	model.Lime,
}

func randomFoodColor(rng *rand.Rand, palette []model.Color) model.Color {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	return palette[rng.Intn(len(palette))]
}
