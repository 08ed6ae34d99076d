package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PlacementMetrics records wishlist placement outcomes.
type PlacementMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
	conflict prometheus.Counter
}

// NewPlacementMetrics registers the placement metrics on the provided registerer.
func NewPlacementMetrics(reg prometheus.Registerer) *PlacementMetrics {
	if reg == nil {
		return &PlacementMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "placement_duration_seconds",
		Help:    "Duration of wishlist placements in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "placement_outcomes_total",
		Help: "Wishlist placement results by selection kind and reason.",
	}, []string{"kind", "reason"})
	conflict := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "placement_inflight_rejections_total",
		Help: "Placements rejected because the same selection was already in flight.",
	})
	reg.MustRegister(duration, outcomes, conflict)
	return &PlacementMetrics{
		duration: duration,
		outcomes: outcomes,
		conflict: conflict,
	}
}

// ObserveDuration records how long a placement for the kind took.
func (m *PlacementMetrics) ObserveDuration(kind string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
}

// IncOutcome counts one finished placement. Successful placements use reason "placed".
func (m *PlacementMetrics) IncOutcome(kind, reason string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(normalizeLabel(kind), normalizeLabel(reason)).Inc()
}

// IncInFlightRejection counts a commit refused by the in-flight guard.
func (m *PlacementMetrics) IncInFlightRejection() {
	if m == nil || m.conflict == nil {
		return
	}
	m.conflict.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
