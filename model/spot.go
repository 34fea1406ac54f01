package model

// Grid is the size of the board in cells.
type Grid struct {
	Width  int
	Height int
}

// Contains checks if the spot lies on the grid.
func (g Grid) Contains(s Spot) bool {
	return s.X >= 0 && s.X < g.Width && s.Y >= 0 && s.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int { return g.Width * g.Height }

// Spot is a cell coordinate on the grid.
type Spot struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Equals checks if 2 spots are the same x,y coordinate
func (s Spot) Equals(other Spot) bool {
	return s.X == other.X && s.Y == other.Y
}

// Add translates the spot by a heading.
func (s Spot) Add(h Heading) Spot {
	return Spot{X: s.X + h.DX, Y: s.Y + h.DY}
}

// Wrap folds the spot back onto the grid, leaving one edge enters the
// opposite edge.
func (s Spot) Wrap(g Grid) Spot {
	return Spot{X: wrap(s.X, g.Width), Y: wrap(s.Y, g.Height)}
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// Heading is a unit step along one axis.
type Heading struct {
	DX int `json:"dx" msgpack:"dx"`
	DY int `json:"dy" msgpack:"dy"`
}

// The four headings a snake can have.
var (
	Up    = Heading{DX: 0, DY: -1}
	Down  = Heading{DX: 0, DY: 1}
	Left  = Heading{DX: -1, DY: 0}
	Right = Heading{DX: 1, DY: 0}
)

// IsZero reports whether the heading is the zero vector, used to mean "no
// turn requested".
func (h Heading) IsZero() bool { return h.DX == 0 && h.DY == 0 }

// Perpendicular reports whether h and other lie on different axes.
func (h Heading) Perpendicular(other Heading) bool {
	return (h.DX == 0) != (other.DX == 0)
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
