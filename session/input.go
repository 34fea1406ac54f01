package session

import (
	"github.com/battlesnakeio/snake2p/display"
	"github.com/battlesnakeio/snake2p/model"
)

// Input reports which keys were pressed this tick. display.Driver is one.
type Input interface {
	Pressed(k display.Key) bool
}

type binding struct {
	key     display.Key
	heading model.Heading
}

type scheme []binding

var (
	wasd = scheme{
		{display.KeyW, model.Up},
		{display.KeyS, model.Down},
		{display.KeyA, model.Left},
		{display.KeyD, model.Right},
	}
	arrows = scheme{
		{display.KeyUp, model.Up},
		{display.KeyDown, model.Down},
		{display.KeyLeft, model.Left},
		{display.KeyRight, model.Right},
	}
	combined = append(append(scheme{}, wasd...), arrows...)
)

// turn returns the first pressed key, in scheme order, that turns the snake.
// Keys along the current heading are skipped so a reverse never masks a
// valid turn pressed in the same tick.
func (sc scheme) turn(in Input, s *model.Snake) model.Heading {
	for _, b := range sc {
		if in.Pressed(b.key) && b.heading.Perpendicular(s.Heading) {
			return b.heading
		}
	}
	return model.Heading{}
}

// schemeFor resolves which keys steer which player for a role. Local games
// split the keyboard, networked players may use either set.
func schemeFor(r Role, p model.PlayerID) scheme {
	if r != RoleLocalBoth {
		return combined
	}
	if p == model.Player2 {
		return arrows
	}
	return wasd
}
