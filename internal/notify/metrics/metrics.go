package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for FollowUps.
const (
	OutcomeSent        = "sent"
	OutcomeFailed      = "failed"
	OutcomeRejected    = "rejected"
	OutcomeDuplicate   = "duplicate"
	OutcomeThrottled   = "throttled"
	OutcomeBreakerOpen = "breaker_open"
)

type Metrics struct {
	FollowUps       *prometheus.CounterVec
	Segments        prometheus.Histogram
	ProviderLatency prometheus.Histogram
	BreakerOpen     prometheus.Gauge
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FollowUps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotline_sms_follow_ups_total",
			Help: "Follow-up SMS attempts by outcome",
		}, []string{"outcome"}),
		Segments: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hotline_sms_segments",
			Help:    "Estimated billing segments per follow-up SMS",
			Buckets: []float64{1, 2, 3, 4},
		}),
		ProviderLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hotline_sms_provider_latency_seconds",
			Help:    "Latency of SMS provider calls",
			Buckets: prometheus.DefBuckets,
		}),
		BreakerOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hotline_sms_breaker_open",
			Help: "1 while the SMS provider circuit breaker is open",
		}),
	}
}

func (m *Metrics) IncrementFollowUp(outcome string) {
	m.FollowUps.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSegments(count int) {
	m.Segments.Observe(float64(count))
}

func (m *Metrics) ObserveProviderLatency(d time.Duration) {
	m.ProviderLatency.Observe(d.Seconds())
}

func (m *Metrics) SetBreakerOpen(open bool) {
	if open {
		m.BreakerOpen.Set(1)
		return
	}
	m.BreakerOpen.Set(0)
}
