package archive

import (
	"encoding/json"
	"os"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func appendOnlyFileWriter(directory, id string) (writer, error) {
	if err := os.MkdirAll(directory, 0775); err != nil {
		return nil, err
	}
	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE | os.O_EXCL
	return os.OpenFile(getFilePath(directory, id), flags, 0644)
}

// Recorder writes every round it is shown to its own file in a directory.
// A frame is only written when the turn or the result changed since the
// previous one.
type Recorder struct {
	directory string
	grid      model.Grid

	id       string
	w        writer
	wrote    bool
	lastTurn int64
	lastOver bool
}

// NewRecorder returns a recorder writing to directory.
func NewRecorder(directory string, grid model.Grid) *Recorder {
	return &Recorder{directory: directory, grid: grid}
}

// Record appends the round's current state to its file, starting a new
// file when the round id changes.
func (r *Recorder) Record(round *model.Round) error {
	if round.ID != r.id {
		if err := r.Close(); err != nil {
			log.WithError(err).WithField("round", r.id).Warn("unable to close round file")
		}
		w, err := openFileWriter(r.directory, round.ID)
		if err != nil {
			return errors.Wrapf(err, "open round %s", round.ID)
		}
		header := Header{ID: round.ID, Width: r.grid.Width, Height: r.grid.Height}
		if err := writeLine(w, &header); err != nil {
			w.Close()
			return errors.Wrapf(err, "write header of round %s", round.ID)
		}
		r.id, r.w, r.wrote = round.ID, w, false
		log.WithField("round", round.ID).Debug("recording round")
	}

	if r.wrote && round.Turn == r.lastTurn && round.Over == r.lastOver {
		return nil
	}
	frame := toFrame(round)
	if err := writeLine(r.w, &frame); err != nil {
		return errors.Wrapf(err, "write frame %d of round %s", round.Turn, round.ID)
	}
	r.wrote, r.lastTurn, r.lastOver = true, round.Turn, round.Over
	return nil
}

// Close closes the file of the current round.
func (r *Recorder) Close() error {
	if r.w == nil {
		return nil
	}
	err := r.w.Close()
	r.w = nil
	r.id = ""
	return err
}
