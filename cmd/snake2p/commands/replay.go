package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/battlesnakeio/snake2p/archive"
	"github.com/battlesnakeio/snake2p/display"
	"github.com/battlesnakeio/snake2p/model"
	"github.com/battlesnakeio/snake2p/session"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var roundFile string

func init() {
	replayCmd.Flags().StringVarP(&roundFile, "file", "f", "", "the recorded round to replay")
	inspectCmd.Flags().StringVarP(&roundFile, "file", "f", "", "the recorded round to inspect")
}

func requireRoundFile(c *cobra.Command, args []string) error {
	if len(roundFile) == 0 {
		return errors.New("round file is required")
	}
	return nil
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded round, space pauses, arrows step and esc quits",
	Args:  requireRoundFile,
	Run: func(*cobra.Command, []string) {
		round, err := archive.ReadFile(roundFile)
		if err != nil {
			fatal(err, "unable to load round")
		}
		if len(round.Frames) == 0 {
			fatal(archive.ErrEmpty, "nothing to replay")
		}
		if err := replayRound(round); err != nil {
			fatal(err, "replay stopped")
		}
	},
}

type replayer struct {
	round  *archive.Round
	index  int
	paused bool
	done   bool
}

// moveFrameForwards reports true once the last frame is reached.
func moveFrameForwards(frameIndex, count int) (int, bool) {
	frameIndex++
	if frameIndex >= count-1 {
		return count - 1, true
	}
	return frameIndex, false
}

func moveFrameBackwards(frameIndex int) int {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex
}

// step applies one tick of input. Playback stops on the last frame.
func (r *replayer) step(in session.Input) {
	count := len(r.round.Frames)
	switch {
	case in.Pressed(display.KeyEsc):
		r.done = true
	case in.Pressed(display.KeySpace):
		r.paused = !r.paused
	case in.Pressed(display.KeyLeft):
		r.paused = true
		r.index = moveFrameBackwards(r.index)
	case in.Pressed(display.KeyRight):
		r.paused = true
		r.index, _ = moveFrameForwards(r.index, count)
	case !r.paused:
		var last bool
		r.index, last = moveFrameForwards(r.index, count)
		r.paused = last
	}
}

func (r *replayer) render(scr session.Screen) {
	f := r.round.Frames[r.index]
	current := f.Round(r.round.Header.ID)
	session.DrawRound(scr, &current)

	p1, p2 := current.Points()
	scr.DrawText(0, display.AlignLeft, model.Green, fmt.Sprintf("GREEN: %d", p1))
	scr.DrawText(0, display.AlignCenter, model.White, fmt.Sprintf("TURN %d", f.Turn))
	scr.DrawText(0, display.AlignRight, model.Blue, fmt.Sprintf("BLUE: %d", p2))

	foot := display.HeaderRows + r.round.Header.Height
	if current.Over {
		scr.DrawText(foot, display.AlignCenter, model.Yellow, session.WinnerText(&current, session.RoleNetworkHost))
	} else if r.paused {
		scr.DrawText(foot, display.AlignCenter, model.White, "PAUSED")
	}
}

func replayRound(round *archive.Round) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term, err := display.NewTerminal(round.Header.Grid())
	if err != nil {
		return err
	}
	defer term.Close()

	r := &replayer{round: round}
	limiter := rate.NewLimiter(rate.Limit(tickRate), 1)
	for !r.done {
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}
		if err := term.BeginFrame(); err != nil {
			return err
		}
		if term.Closed() {
			return nil
		}
		r.render(term)
		if err := term.EndFrame(); err != nil {
			return err
		}
		r.step(term)
	}
	return nil
}
