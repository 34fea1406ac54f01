package commands

import (
	"github.com/battlesnakeio/snake2p/archive"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var inspectTurn int64 = -1

func init() {
	inspectCmd.Flags().Int64VarP(&inspectTurn, "turn", "t", inspectTurn, "only dump the frame of this turn")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "dumps a recorded round",
	Args:  requireRoundFile,
	Run: func(*cobra.Command, []string) {
		round, err := archive.ReadFile(roundFile)
		if err != nil {
			fatal(err, "unable to load round")
		}
		spew.Dump(selectFrames(round, inspectTurn))
	},
}

// selectFrames narrows a round to the frames of one turn, or leaves it whole
// for a negative turn.
func selectFrames(round *archive.Round, turn int64) *archive.Round {
	if turn < 0 {
		return round
	}
	out := &archive.Round{Header: round.Header}
	for _, f := range round.Frames {
		if f.Turn == turn {
			out.Frames = append(out.Frames, f)
		}
	}
	return out
}
