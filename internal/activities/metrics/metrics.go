package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for registry operations.
type Metrics struct {
	SignupsTotal      *prometheus.CounterVec
	SignupFailures    *prometheus.CounterVec
	SignupLatency     prometheus.Histogram
	ListRequests      prometheus.Counter
	ActivitiesTotal   prometheus.Gauge
	ParticipantsTotal prometheus.Gauge
}

// New registers and returns activity metrics collectors.
func New() *Metrics {
	return &Metrics{
		SignupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_signups_total",
			Help: "Total number of successful signups, labeled by activity",
		}, []string{"activity"}),
		SignupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_signup_failures_total",
			Help: "Total number of rejected signups, labeled by reason",
		}, []string{"reason"}),
		SignupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mergington_signup_latency_seconds",
			Help:    "Latency of signup operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		ListRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_list_requests_total",
			Help: "Total number of activity listing requests",
		}),
		ActivitiesTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "mergington_activities_total",
			Help: "Current number of activities in the registry",
		}),
		ParticipantsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "mergington_participants_total",
			Help: "Current number of roster entries across all activities",
		}),
	}
}

// ObserveSignupLatency records the duration of a signup operation.
func (m *Metrics) ObserveSignupLatency(durationSeconds float64) {
	m.SignupLatency.Observe(durationSeconds)
}
