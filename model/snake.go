package model

// MaxTail is the most body segments a snake can have.
const MaxTail = 100

// Snake is one player's snake. Body holds the trailing segments, index 0 is
// the segment nearest the head. The body never grows past MaxTail.
type Snake struct {
	Head      Spot    `json:"head" msgpack:"head"`
	Body      []Spot  `json:"body" msgpack:"body"`
	Heading   Heading `json:"heading" msgpack:"heading"`
	HeadColor Color   `json:"head_color" msgpack:"head_color"`
	BodyColor Color   `json:"body_color" msgpack:"body_color"`
	Alive     bool    `json:"alive" msgpack:"alive"`
	Points    int     `json:"points" msgpack:"points"`
}

// NewSnake returns a live snake of length 1 at start, heading right.
func NewSnake(start Spot, head, body Color) Snake {
	return Snake{
		Head:      start,
		Body:      []Spot{start},
		Heading:   Right,
		HeadColor: head,
		BodyColor: body,
		Alive:     true,
	}
}

// Size returns the number of body segments.
func (s *Snake) Size() int { return len(s.Body) }

// Covers checks if the spot is under the snake's head or any body segment.
func (s *Snake) Covers(p Spot) bool {
	if s.Head.Equals(p) {
		return true
	}
	return s.BodyCovers(p)
}

// BodyCovers checks if the spot is under any body segment.
func (s *Snake) BodyCovers(p Spot) bool {
	for _, b := range s.Body {
		if b.Equals(p) {
			return true
		}
	}
	return false
}

// Shift moves every segment one place back along the body, puts the old head
// in segment 0 and returns the segment that fell off the end.
func (s *Snake) Shift() Spot {
	if len(s.Body) == 0 {
		return s.Head
	}
	dropped := s.Body[len(s.Body)-1]
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = s.Head
	return dropped
}

// Grow appends seg to the end of the body unless the snake is already at
// MaxTail. It reports whether the snake grew.
func (s *Snake) Grow(seg Spot) bool {
	if len(s.Body) >= MaxTail {
		return false
	}
	s.Body = append(s.Body, seg)
	return true
}

// Clone returns a copy that shares no memory with s.
func (s Snake) Clone() Snake {
	c := s
	c.Body = append([]Spot(nil), s.Body...)
	return c
}
