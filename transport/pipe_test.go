package transport

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPipe(t *testing.T) {
	a, b := Pipe()

	evs := a.Poll()
	require.Len(t, evs, 1)
	require.Equal(t, EventConnected, evs[0].Kind)
	require.Len(t, b.Poll(), 1)
	require.Empty(t, a.Poll(), "poll drains the queue")

	payload := []byte{9, 8}
	require.NoError(t, a.Send(payload))
	payload[0] = 0

	evs = b.Poll()
	require.Len(t, evs, 1)
	require.Equal(t, EventReceived, evs[0].Kind)
	require.Equal(t, []byte{9, 8}, evs[0].Payload, "payload is copied on send")

	require.NoError(t, a.Close())
	require.False(t, a.Connected())
	require.False(t, b.Connected())
	evs = b.Poll()
	require.Len(t, evs, 1)
	require.Equal(t, EventDisconnected, evs[0].Kind)
	require.Equal(t, ErrNotConnected, b.Send([]byte{1}))
}

func TestInstrument(t *testing.T) {
	a, b := Pipe()
	ia := Instrument(a)
	ib := Instrument(b)
	ia.Poll()
	ib.Poll()

	sentBefore := testutil.ToFloat64(transportBytes.WithLabelValues("sent"))
	receivedBefore := testutil.ToFloat64(transportBytes.WithLabelValues("received"))

	require.NoError(t, ia.Send([]byte{1, 2, 3, 4}))
	require.Len(t, ib.Poll(), 1)

	require.Equal(t, sentBefore+4, testutil.ToFloat64(transportBytes.WithLabelValues("sent")))
	require.Equal(t, receivedBefore+4, testutil.ToFloat64(transportBytes.WithLabelValues("received")))
	require.True(t, ia.Connected())
	require.NoError(t, ia.Close())
	require.False(t, ib.Connected())
}
