package display

import (
	"sync"

	"github.com/battlesnakeio/snake2p/model"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	// cellWidth is how many terminal columns one board cell takes, so cells
	// come out roughly square.
	cellWidth = 2
)

// Terminal is a Driver drawing to the terminal with termbox.
type Terminal struct {
	grid    model.Grid
	events  chan termbox.Event
	done    chan struct{}
	once    sync.Once
	pressed map[Key]bool
	closed  bool
}

// NewTerminal takes over the terminal. Close must be called to give it back.
func NewTerminal(grid model.Grid) (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "termbox init")
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)

	t := &Terminal{
		grid:    grid,
		events:  make(chan termbox.Event, 64),
		done:    make(chan struct{}),
		pressed: map[Key]bool{},
	}
	go t.pollEvents()
	return t, nil
}

func (t *Terminal) pollEvents() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// BeginFrame implements Driver. Key presses queued since the previous frame
// become visible to Pressed.
func (t *Terminal) BeginFrame() error {
	t.pressed = map[Key]bool{}
	for drained := false; !drained; {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			drained = true
		}
	}
	return termbox.Clear(defaultColor, defaultColor)
}

func (t *Terminal) handle(ev termbox.Event) {
	switch ev.Type {
	case termbox.EventError:
		t.closed = true
	case termbox.EventKey:
		if ev.Key == termbox.KeyCtrlC {
			t.closed = true
			return
		}
		if k, ok := KeyFor(ev); ok {
			t.pressed[k] = true
		}
	}
}

// EndFrame implements Driver.
func (t *Terminal) EndFrame() error {
	return termbox.Flush()
}

// DrawCell implements Driver.
func (t *Terminal) DrawCell(p model.Spot, c model.Color) {
	attr := Attribute(c)
	x := p.X * cellWidth
	y := p.Y + HeaderRows
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, y, ' ', attr, attr)
	}
}

// DrawText implements Driver.
func (t *Terminal) DrawText(row int, align Align, c model.Color, text string) {
	width := t.grid.Width * cellWidth
	x := 0
	switch align {
	case AlignCenter:
		x = (width - runewidth.StringWidth(text)) / 2
	case AlignRight:
		x = width - runewidth.StringWidth(text)
	}
	if x < 0 {
		x = 0
	}
	tbprint(x, row, Attribute(c), defaultColor, text)
}

// Pressed implements Driver.
func (t *Terminal) Pressed(k Key) bool { return t.pressed[k] }

// Closed implements Driver.
func (t *Terminal) Closed() bool { return t.closed }

// Close restores the terminal.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		termbox.Interrupt()
		termbox.Close()
	})
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

// KeyFor maps a termbox key event to a game key.
func KeyFor(ev termbox.Event) (Key, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return KeyUp, true
	case termbox.KeyArrowDown:
		return KeyDown, true
	case termbox.KeyArrowLeft:
		return KeyLeft, true
	case termbox.KeyArrowRight:
		return KeyRight, true
	case termbox.KeySpace:
		return KeySpace, true
	case termbox.KeyEsc:
		return KeyEsc, true
	}

	switch ev.Ch {
	case 'w', 'W':
		return KeyW, true
	case 'a', 'A':
		return KeyA, true
	case 's', 'S':
		return KeyS, true
	case 'd', 'D':
		return KeyD, true
	case 'h', 'H':
		return KeyH, true
	case 'j', 'J':
		return KeyJ, true
	case 'l', 'L':
		return KeyL, true
	case 'r', 'R':
		return KeyR, true
	}
	return 0, false
}

// Attribute maps a color onto the 6x6x6 cube of the 256 color palette.
func Attribute(c model.Color) termbox.Attribute {
	r := (int(c.R)*5 + 127) / 255
	g := (int(c.G)*5 + 127) / 255
	b := (int(c.B)*5 + 127) / 255
	return termbox.Attribute(16 + 36*r + 6*g + b + 1)
}
