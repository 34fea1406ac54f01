package session

import (
	"context"
	"testing"

	"github.com/battlesnakeio/snake2p/display"
	"github.com/battlesnakeio/snake2p/model"
	"github.com/stretchr/testify/require"
)

type text struct {
	row   int
	align display.Align
	text  string
}

// fakeDriver plays back scripted key presses, one set per frame, and keeps
// what the last frame drew.
type fakeDriver struct {
	script  [][]display.Key
	frame   int
	pressed keys
	cells   map[model.Spot]model.Color
	texts   []text
	ended   int
}

func (d *fakeDriver) BeginFrame() error {
	d.pressed = keys{}
	if d.frame < len(d.script) {
		d.pressed = press(d.script[d.frame]...)
	}
	d.frame++
	d.cells = map[model.Spot]model.Color{}
	d.texts = nil
	return nil
}

func (d *fakeDriver) EndFrame() error {
	d.ended++
	return nil
}

func (d *fakeDriver) DrawCell(p model.Spot, c model.Color) { d.cells[p] = c }

func (d *fakeDriver) DrawText(row int, align display.Align, c model.Color, s string) {
	d.texts = append(d.texts, text{row: row, align: align, text: s})
}

func (d *fakeDriver) Pressed(k display.Key) bool { return d.pressed[k] }

func (d *fakeDriver) Closed() bool { return d.frame > len(d.script) }

func (d *fakeDriver) drew(s string) bool {
	for _, t := range d.texts {
		if t.text == s {
			return true
		}
	}
	return false
}

func TestRun(t *testing.T) {
	d := &fakeDriver{script: [][]display.Key{
		{},
		{display.KeyL},
		{},
		{display.KeyS},
	}}
	s := New(testConfig(1))

	require.NoError(t, s.Run(context.Background(), d))
	require.Equal(t, 4, d.ended)
	require.Equal(t, RoleLocalBoth, s.Role())
	require.Equal(t, int64(2), s.Round().Turn)
	require.Equal(t, model.Down, s.Round().Snakes[0].Heading)

	require.True(t, d.drew("P1: WASD!!!!"))
	require.True(t, d.drew("P2: ARROWS!!!!"))
	require.Equal(t, model.DarkGreen, d.cells[s.Round().Snakes[0].Head])
	require.Equal(t, model.DarkBlue, d.cells[s.Round().Snakes[1].Head])
}

func TestRunQuitsOnEscape(t *testing.T) {
	d := &fakeDriver{script: [][]display.Key{{}, {display.KeyEsc}, {}}}
	s := New(testConfig(1))

	require.NoError(t, s.Run(context.Background(), d))
	require.Equal(t, 1, d.ended)
}

func TestRunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &fakeDriver{script: [][]display.Key{{}}}

	require.NoError(t, New(testConfig(1)).Run(ctx, d))
	require.Zero(t, d.ended)
}

func TestRenderMenu(t *testing.T) {
	host, joiner := newPair(t)

	d := &fakeDriver{}
	d.BeginFrame()
	joiner.Render(d)
	require.True(t, d.drew("P2P SNAKE GAME"))
	require.True(t, d.drew("Connected as Player 2"))
	require.True(t, d.drew("Waiting for the host to start..."))
	require.False(t, d.drew("Press SPACE to start game"))

	d.BeginFrame()
	host.Render(d)
	require.True(t, d.drew("Connected as Player 1"))
	require.True(t, d.drew("Press SPACE to start game"))

	host.Tick(context.Background(), press(display.KeySpace))
	joiner.Tick(context.Background(), keys{})
	d.BeginFrame()
	joiner.Render(d)
	require.True(t, d.drew("Press SPACE to start game"))
}

func TestRenderGameOver(t *testing.T) {
	host, joiner := startPair(t)
	for _, s := range []*Session{host, joiner} {
		s.round.Over = true
		s.round.Winner = model.WinnerTie
		s.state = StateRoundOver
	}

	d := &fakeDriver{}
	d.BeginFrame()
	host.Render(d)
	require.True(t, d.drew("GAME OVER!!!"))
	require.True(t, d.drew("TIE GAME! Points: P1=0 P2=0"))
	require.True(t, d.drew("PRESS R TO PLAY AGAIN!!!"))
	require.Empty(t, d.cells, "the board is hidden")

	d.BeginFrame()
	joiner.Render(d)
	require.True(t, d.drew("WAITING FOR THE HOST TO PLAY AGAIN"))
}

func TestWinnerText(t *testing.T) {
	r := &model.Round{}
	r.Snakes[0].Points = 3
	r.Snakes[1].Points = 7

	tests := []struct {
		Winner   model.Winner
		Role     Role
		Expected string
	}{
		{model.WinnerTie, RoleLocalBoth, "TIE GAME! Points: P1=3 P2=7"},
		{model.WinnerPlayer1, RoleLocalBoth, "GREEN WINS!!! Points: P1=3 P2=7"},
		{model.WinnerPlayer2, RoleLocalBoth, "BLUE WINS!!! Points: P1=3 P2=7"},
		{model.WinnerPlayer1, RoleNetworkHost, "PLAYER 1 WINS!!! Points: P1=3 P2=7"},
		{model.WinnerPlayer2, RoleNetworkJoiner, "PLAYER 2 WINS!!! Points: P1=3 P2=7"},
	}

	for _, test := range tests {
		r.Winner = test.Winner
		require.Equal(t, test.Expected, WinnerText(r, test.Role))
	}
}
