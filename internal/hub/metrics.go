package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "midihub_events_published_total",
		Help: "Events accepted per port",
	}, []string{"port"})

	eventsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "midihub_events_rejected_total",
		Help: "Events rejected because their payload was not a valid MIDI message",
	})

	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "midihub_events_dropped_total",
		Help: "Events dropped from full port queues",
	})

	wsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "midihub_ws_clients",
		Help: "Connected websocket subscribers",
	})
)
