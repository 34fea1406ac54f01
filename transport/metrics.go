package transport

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instrument wraps all host methods to instrument the underlying calls.
func Instrument(h Host) Host { return &metrics{h} }

var (
	transportCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake2p",
			Subsystem: "transport",
			Name:      "calls",
			Help:      "Calls processed by the transport.",
		},
		[]string{"method"},
	)
	transportBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake2p",
			Subsystem: "transport",
			Name:      "payload_bytes_total",
			Help:      "Payload bytes moved by the transport.",
		},
		[]string{"direction"},
	)
	transportEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake2p",
			Subsystem: "transport",
			Name:      "events_total",
			Help:      "Events returned by Poll.",
		},
		[]string{"event"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(transportCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(transportCalls, transportBytes, transportEvents)
}

type metrics struct{ h Host }

func (m *metrics) Send(payload []byte) error {
	defer instrument("Send")()
	err := m.h.Send(payload)
	if err == nil {
		transportBytes.WithLabelValues("sent").Add(float64(len(payload)))
	}
	return err
}

func (m *metrics) Poll() []Event {
	defer instrument("Poll")()
	events := m.h.Poll()
	for _, ev := range events {
		transportEvents.WithLabelValues(ev.Kind.String()).Inc()
		if ev.Kind == EventReceived {
			transportBytes.WithLabelValues("received").Add(float64(len(ev.Payload)))
		}
	}
	return events
}

func (m *metrics) Connected() bool { return m.h.Connected() }

func (m *metrics) Close() error {
	defer instrument("Close")()
	return m.h.Close()
}
