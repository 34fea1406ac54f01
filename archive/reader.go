package archive

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrEmpty is returned for a file with no header.
var ErrEmpty = errors.New("archive: empty round file")

var openFileReader = bufferedFileReader

type reader interface {
	ReadBytes(delim byte) ([]byte, error)
	Close() error
}

type fileReader struct {
	*bufio.Reader
	f *os.File
}

func (r *fileReader) Close() error { return r.f.Close() }

func bufferedFileReader(file string) (reader, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	return &fileReader{Reader: bufio.NewReader(f), f: f}, nil
}

// readLine decodes the next line into out. It reports false once there is
// nothing left to read, a final line without a newline is still decoded.
func readLine(r reader, out interface{}) (bool, error) {
	bytes, err := r.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	if len(bytes) == 0 && err == io.EOF {
		return false, nil
	}
	if jerr := json.Unmarshal(bytes, out); jerr != nil {
		return false, jerr
	}
	return true, nil
}

// ReadFile loads a round file written by a Recorder.
func ReadFile(file string) (*Round, error) {
	r, err := openFileReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", file)
	}
	defer r.Close()

	round := &Round{}
	ok, err := readLine(r, &round.Header)
	if err != nil {
		return nil, errors.Wrapf(err, "read header of %s", file)
	}
	if !ok {
		return nil, ErrEmpty
	}

	for {
		f := Frame{}
		ok, err := readLine(r, &f)
		if err != nil {
			return nil, errors.Wrapf(err, "read frame %d of %s", len(round.Frames), file)
		}
		if !ok {
			return round, nil
		}
		round.Frames = append(round.Frames, f)
	}
}

// ReadRound loads the round with the given id from directory.
func ReadRound(directory, id string) (*Round, error) {
	return ReadFile(getFilePath(directory, id))
}
