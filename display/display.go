// Package display defines what the game needs from a screen and a keyboard,
// and provides a terminal implementation on top of termbox.
package display

import "github.com/battlesnakeio/snake2p/model"

// Key is a key the game reacts to.
type Key int

// Keys the game reacts to.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyH
	KeyJ
	KeyL
	KeyR
	KeySpace
	KeyEsc
)

// Align is the horizontal placement of a line of text.
type Align int

// Text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// HeaderRows is the number of text rows above the board. Board cell (x, y)
// is on text row y+HeaderRows and the first row below the board is
// HeaderRows+height.
const HeaderRows = 1

// Driver draws frames and reports key presses. Pressed is edge triggered:
// a key reads true for exactly one frame after it was pressed.
type Driver interface {
	BeginFrame() error
	EndFrame() error
	DrawCell(p model.Spot, c model.Color)
	DrawText(row int, align Align, c model.Color, text string)
	Pressed(k Key) bool
	// Closed reports whether the user asked to quit.
	Closed() bool
}
