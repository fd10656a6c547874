package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"elektron/internal/modules/prices/types"
)

type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics creates the upstream collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elektron_upstream_requests_total",
				Help: "Upstream price fetches by region and result.",
			},
			[]string{"region", "result"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "elektron_upstream_request_duration_seconds",
				Help:    "Upstream price fetch latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"region"},
		),
	}
	reg.MustRegister(m.Requests, m.Latency)
	return m
}

func (m *Metrics) observe(region types.Region, err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Requests.WithLabelValues(string(region), result).Inc()
	m.Latency.WithLabelValues(string(region)).Observe(d.Seconds())
}
