// Package archive records rounds to disk, one file per round. A file holds
// JSON lines: a header describing the round followed by one frame per tick.
package archive

import (
	"path"

	"github.com/battlesnakeio/snake2p/model"
)

// Extension is appended to the round id to name its file.
const Extension = ".jsonl"

// Header is the first line of a round file.
type Header struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Frame is the state of the round after one tick. Only active food is kept.
type Frame struct {
	Turn   int64          `json:"turn"`
	Snakes [2]model.Snake `json:"snakes"`
	Food   []model.Food   `json:"food"`
	Over   bool           `json:"over"`
	Winner model.Winner   `json:"winner"`
}

// Round is everything read back from one file.
type Round struct {
	Header Header
	Frames []Frame
}

func toFrame(r *model.Round) Frame {
	f := Frame{
		Turn:   r.Turn,
		Food:   []model.Food{},
		Over:   r.Over,
		Winner: r.Winner,
	}
	for i := range r.Snakes {
		f.Snakes[i] = r.Snakes[i].Clone()
	}
	for _, food := range r.Foods {
		if food.Active {
			f.Food = append(f.Food, food)
		}
	}
	return f
}

// Round rebuilds the game state a frame was taken from.
func (f Frame) Round(id string) model.Round {
	r := model.Round{
		ID:     id,
		Turn:   f.Turn,
		Over:   f.Over,
		Winner: f.Winner,
	}
	for i := range f.Snakes {
		r.Snakes[i] = f.Snakes[i].Clone()
	}
	for i, food := range f.Food {
		if i >= model.FoodSlots {
			break
		}
		r.Foods[i] = food
	}
	return r
}

// Grid returns the board size the round was played on.
func (h Header) Grid() model.Grid {
	return model.Grid{Width: h.Width, Height: h.Height}
}

func getFilePath(directory string, id string) string {
	return path.Join(directory, id) + Extension
}
