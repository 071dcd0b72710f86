package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the redeem logic collectors on a private registry. A nil
// *Metrics drops every observation.
type Metrics struct {
	registry *prometheus.Registry

	ExecutionsTotal  *prometheus.CounterVec
	FeeQuantityTotal prometheus.Counter
	ExecuteSeconds   prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ExecutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redeem_logic_executions_total",
			Help: "Redeem logic executions by outcome",
		}, []string{"outcome"}),
		FeeQuantityTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "redeem_logic_fee_quantity_total",
			Help: "Rounding residual kept as fee",
		}),
		ExecuteSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "redeem_logic_execute_seconds",
			Help:    "Engine evaluation time",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.ExecutionsTotal,
		m.FeeQuantityTotal,
		m.ExecuteSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveExecution(outcome string, feeQuantity uint64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ExecutionsTotal.WithLabelValues(outcome).Inc()
	m.FeeQuantityTotal.Add(float64(feeQuantity))
	m.ExecuteSeconds.Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
