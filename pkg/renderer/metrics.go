package renderer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "pathtracer"

// Metrics exposes render progress as Prometheus collectors
type Metrics struct {
	Samples        prometheus.Counter
	Pixels         prometheus.Counter
	RenderDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "samples_total",
			Help:      "Counts camera rays traced through the integrator",
		}),
		Pixels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pixels_total",
			Help:      "Counts finished pixel estimates",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_duration_seconds",
			Help:      "Wall time of complete frame renders",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Samples, m.Pixels, m.RenderDuration)
	}
	return m
}

func (m *Metrics) observePixel(samples int) {
	if m == nil {
		return
	}
	m.Pixels.Inc()
	m.Samples.Add(float64(samples))
}

func (m *Metrics) observeRender(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RenderDuration.Observe(elapsed.Seconds())
}
