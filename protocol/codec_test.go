package protocol

import (
	"testing"

	"github.com/battlesnakeio/snake2p/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestSnakeUpdateRoundTrip(t *testing.T) {
	s := model.NewSnake(model.Spot{X: 40, Y: 30}, model.DarkBlue, model.Blue)
	s.Heading = model.Up
	s.Body = []model.Spot{{X: 40, Y: 31}, {X: 40, Y: 32}, {X: 41, Y: 32}}
	s.Points = 12

	data, err := Encode(SnakeUpdate{Player: model.Player2, Epoch: 3, Snake: s})
	require.NoError(t, err)

	m, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, KindSnakeUpdate, m.Kind())

	got := m.(SnakeUpdate)
	require.Equal(t, model.Player2, got.Player)
	require.Equal(t, Epoch(3), got.Epoch)
	require.Equal(t, s.Head, got.Snake.Head)
	require.Equal(t, s.Body, got.Snake.Body)
	require.Equal(t, s.Heading, got.Snake.Heading)
	require.Equal(t, s.HeadColor, got.Snake.HeadColor)
	require.Equal(t, s.BodyColor, got.Snake.BodyColor)
	require.Equal(t, s.Alive, got.Snake.Alive)
	require.Equal(t, s.Points, got.Snake.Points)
}

func TestFoodUpdateRoundTrip(t *testing.T) {
	var foods model.Foods
	foods[0] = model.Food{Spot: model.Spot{X: 1, Y: 2}, Active: true, Color: model.Gold}
	foods[49] = model.Food{Spot: model.Spot{X: 75, Y: 56}, Active: true, Color: model.Lime}

	data, err := Encode(FoodUpdate{Epoch: 1, Foods: foods})
	require.NoError(t, err)

	m, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, foods, m.(FoodUpdate).Foods)
	require.Equal(t, Epoch(1), m.(FoodUpdate).Epoch)
}

func TestGameOverAndRestartRoundTrip(t *testing.T) {
	msgs := []Message{
		GameOver{Winner: model.WinnerPlayer1, Player1Points: 5, Player2Points: 3},
		Restart{},
		Restart{Epoch: 7},
	}
	for _, msg := range msgs {
		data, err := Encode(msg)
		require.NoError(t, err)
		got, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestEncodeTagFirst(t *testing.T) {
	data, err := Encode(Restart{})
	require.NoError(t, err)

	var raw []interface{}
	require.NoError(t, msgpack.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	require.EqualValues(t, KindRestart, raw[0])
}

func TestDecodeUnknownKind(t *testing.T) {
	data, err := msgpack.Marshal([]interface{}{uint8(9), nil})
	require.NoError(t, err)

	_, err = Decode(data)
	require.Error(t, err)
	require.Equal(t, ErrUnknownKind, errors.Cause(err))
}

func TestDecodeMalformed(t *testing.T) {
	tests := [][]byte{
		nil,
		{0xff, 0x00},
		{0x91, 0x00},
	}
	for _, data := range tests {
		_, err := Decode(data)
		require.Error(t, err)
		require.Equal(t, ErrMalformed, errors.Cause(err), "data: %x", data)
	}
}
