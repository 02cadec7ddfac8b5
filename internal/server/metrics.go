package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the operational counters exposed on /metrics.
type Metrics struct {
	Touches             prometheus.Counter
	Milestones          prometheus.Counter
	SessionsCompleted   prometheus.Counter
	SessionsStarted     prometheus.Counter
	Reseeds             prometheus.Counter
	PersistenceFailures prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Touches: factory.NewCounter(prometheus.CounterOpts{
			Name: "babysensory_touches_total",
			Help: "Counted object touches.",
		}),
		Milestones: factory.NewCounter(prometheus.CounterOpts{
			Name: "babysensory_milestones_total",
			Help: "Milestone celebrations triggered.",
		}),
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "babysensory_sessions_started_total",
			Help: "Play sessions started.",
		}),
		SessionsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "babysensory_sessions_completed_total",
			Help: "Play sessions that ran to the full duration.",
		}),
		Reseeds: factory.NewCounter(prometheus.CounterOpts{
			Name: "babysensory_reseeds_total",
			Help: "Mid-session animation seed changes.",
		}),
		PersistenceFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "babysensory_persistence_failures_total",
			Help: "Session records that failed to persist locally.",
		}),
	}
}
