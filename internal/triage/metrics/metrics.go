package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for contact resolution.
type Metrics struct {
	Resolutions       *prometheus.CounterVec
	ResolveLatency    prometheus.Histogram
	DirectoryContacts prometheus.Gauge
	DirectoryReloads  *prometheus.CounterVec
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotline_triage_resolutions_total",
			Help: "Contact resolutions by the fallback stage that produced them",
		}, []string{"stage", "channel"}),

		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hotline_triage_resolve_duration_seconds",
			Help:    "Duration of resolution including message rendering",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		DirectoryContacts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hotline_directory_contacts",
			Help: "Contacts in the live directory snapshot",
		}),

		DirectoryReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotline_directory_reloads_total",
			Help: "Directory reload attempts by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementResolution(stage, channel string) {
	if m != nil {
		m.Resolutions.WithLabelValues(stage, channel).Inc()
	}
}

func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) SetDirectoryContacts(n int) {
	if m != nil {
		m.DirectoryContacts.Set(float64(n))
	}
}

// IncrementReload records a reload with outcome "ok" or "error".
func (m *Metrics) IncrementReload(outcome string) {
	if m != nil {
		m.DirectoryReloads.WithLabelValues(outcome).Inc()
	}
}
