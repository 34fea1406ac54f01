package session

import "github.com/prometheus/client_golang/prometheus"

var (
	tickDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake2p",
			Subsystem: "session",
			Name:      "tick_duration_seconds",
			Help:      "Time spent in one tick, excluding rendering.",
		},
		[]string{"role"},
	)
	ticksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake2p",
			Subsystem: "session",
			Name:      "simulated_ticks_total",
			Help:      "Ticks in which the local snakes were moved.",
		},
		[]string{"role"},
	)
	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake2p",
			Subsystem: "session",
			Name:      "messages_sent_total",
			Help:      "Messages sent to the peer.",
		},
		[]string{"kind"},
	)
	messagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake2p",
			Subsystem: "session",
			Name:      "messages_received_total",
			Help:      "Messages decoded from the peer, applied or not.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(tickDuration, ticksTotal, messagesSent, messagesReceived)
}
