package phone

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts numbers the formatter refused to render.
type Metrics struct {
	Anomalies *prometheus.CounterVec
}

// NewMetrics registers the phone metrics with the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the phone metrics with reg.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Anomalies: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hotline_phone_format_anomalies_total",
			Help: "Phone numbers returned unformatted because they were not 10 digits",
		}, []string{"style"}),
	}
}

// IncrementAnomaly records a refused number for the given render style.
func (m *Metrics) IncrementAnomaly(style string) {
	m.Anomalies.WithLabelValues(style).Inc()
}
