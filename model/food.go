package model

// FoodSlots is the fixed number of food slots on the board.
const FoodSlots = 50

// Food is one food slot. An inactive slot has no meaningful Spot.
type Food struct {
	Spot   Spot  `json:"spot" msgpack:"spot"`
	Active bool  `json:"active" msgpack:"active"`
	Color  Color `json:"color" msgpack:"color"`
}

// Foods is the shared food collection.
type Foods [FoodSlots]Food

// ActiveAt returns the index of the active slot on p.
func (f *Foods) ActiveAt(p Spot) (int, bool) {
	for i := range f {
		if f[i].Active && f[i].Spot.Equals(p) {
			return i, true
		}
	}
	return -1, false
}

// ActiveCount returns the number of active slots.
func (f *Foods) ActiveCount() int {
	n := 0
	for i := range f {
		if f[i].Active {
			n++
		}
	}
	return n
}

// Clear deactivates every slot.
func (f *Foods) Clear() {
	for i := range f {
		f[i].Active = false
	}
}
