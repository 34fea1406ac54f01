package protocol

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrUnknownKind is returned when a payload carries a tag this build does
	// not know.
	ErrUnknownKind = errors.New("protocol: unknown message kind")
	// ErrMalformed is returned when a payload cannot be decoded.
	ErrMalformed = errors.New("protocol: malformed message")
)

// Encode serializes m as a msgpack array of [kind, body]. The transport
// delivers each payload as one frame so no length prefix is added here.
func Encode(m Message) ([]byte, error) {
	if m == nil {
		return nil, errors.New("protocol: nil message")
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(2); err != nil {
		return nil, errors.Wrap(err, "encode header")
	}
	if err := enc.EncodeUint8(uint8(m.Kind())); err != nil {
		return nil, errors.Wrap(err, "encode kind")
	}
	if err := enc.Encode(m); err != nil {
		return nil, errors.Wrapf(err, "encode %s", m.Kind())
	}
	return buf.Bytes(), nil
}

// Decode parses a payload produced by Encode. Unknown tags return
// ErrUnknownKind and anything unreadable returns ErrMalformed, both
// retrievable with errors.Cause.
func Decode(data []byte) (Message, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "header: %v", err)
	}
	if n != 2 {
		return nil, errors.Wrapf(ErrMalformed, "header has %d elements", n)
	}
	tag, err := dec.DecodeUint8()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "kind: %v", err)
	}

	var m Message
	switch Kind(tag) {
	case KindSnakeUpdate:
		v := SnakeUpdate{}
		err = dec.Decode(&v)
		m = v
	case KindFoodUpdate:
		v := FoodUpdate{}
		err = dec.Decode(&v)
		m = v
	case KindGameOver:
		v := GameOver{}
		err = dec.Decode(&v)
		m = v
	case KindRestart:
		v := Restart{}
		err = dec.Decode(&v)
		m = v
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "tag %d", tag)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s body: %v", Kind(tag), err)
	}
	return m, nil
}
