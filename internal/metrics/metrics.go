// Package metrics exposes Prometheus collectors for the store and the
// operation surface.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/store"
)

const namespace = "creativehub"

// Metrics holds the collectors registered for one process.
type Metrics struct {
	Mutations           *prometheus.CounterVec
	StateVersion        prometheus.Gauge
	Entities            *prometheus.GaugeVec
	UnreadNotifications prometheus.Gauge
	Calls               *prometheus.CounterVec
	CallDuration        *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_mutations_total",
				Help:      "Total number of committed store mutations",
			},
			[]string{"kind"},
		),
		StateVersion: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "store_version",
				Help:      "Version of the current store state",
			},
		),
		Entities: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "store_entities",
				Help:      "Number of entities per collection",
			},
			[]string{"collection"},
		),
		UnreadNotifications: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "notifications_unread",
				Help:      "Number of unread notifications in the feed",
			},
		),
		Calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_calls_total",
				Help:      "Total number of operation calls by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_call_duration_seconds",
				Help:      "Duration of operation calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"method"},
		),
	}
}

// Observe is a store.Listener that records each committed change.
func (m *Metrics) Observe(_ context.Context, change store.Change, state store.State) {
	m.Mutations.WithLabelValues(string(change.Kind)).Inc()
	m.SetState(state)
}

// SetState refreshes the gauges from state.
func (m *Metrics) SetState(state store.State) {
	m.StateVersion.Set(float64(state.Version))
	m.UnreadNotifications.Set(float64(notification.CountUnread(state.Notifications)))

	m.Entities.WithLabelValues("team_members").Set(float64(len(state.TeamMembers)))
	m.Entities.WithLabelValues("clients").Set(float64(len(state.Clients)))
	m.Entities.WithLabelValues("campaigns").Set(float64(len(state.Campaigns)))
	m.Entities.WithLabelValues("tasks").Set(float64(len(state.Tasks)))
	m.Entities.WithLabelValues("personal_tasks").Set(float64(len(state.PersonalTasks)))
	m.Entities.WithLabelValues("messages").Set(float64(len(state.Messages)))
	m.Entities.WithLabelValues("channels").Set(float64(len(state.Channels)))
	m.Entities.WithLabelValues("automation_rules").Set(float64(len(state.AutomationRules)))
	m.Entities.WithLabelValues("calendar_events").Set(float64(len(state.CalendarEvents)))
	m.Entities.WithLabelValues("notifications").Set(float64(len(state.Notifications)))
}

// ObserveCall records one operation call.
func (m *Metrics) ObserveCall(method string, took time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Calls.WithLabelValues(method, outcome).Inc()
	m.CallDuration.WithLabelValues(method).Observe(took.Seconds())
}
