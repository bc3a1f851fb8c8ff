package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess        = "success"
	OutcomeUpstreamStatus = "upstream_status"
	OutcomeTransport      = "transport"
	OutcomeMalformed      = "malformed"
)

// GatewayMetrics exposes counters/histograms for upstream forwarding.
type GatewayMetrics struct {
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "gateway",
			Name:      "upstream_requests_total",
			Help:      "Total requests forwarded to the Apps Script upstream",
		}, []string{"action", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "gateway",
			Name:      "upstream_latency_seconds",
			Help:      "Latency of Apps Script upstream calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.upstreamTotal, m.upstreamLatency)
	return m
}

func (m *GatewayMetrics) ObserveUpstream(action, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(action, outcome).Inc()
	m.upstreamLatency.WithLabelValues(action).Observe(seconds)
}

// UpstreamTotal exposes the counter for a label pair; used by tests.
func (m *GatewayMetrics) UpstreamTotal(action, outcome string) prometheus.Counter {
	return m.upstreamTotal.WithLabelValues(action, outcome)
}

// DefaultRegisterer is the registry served by Handler.
func DefaultRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
