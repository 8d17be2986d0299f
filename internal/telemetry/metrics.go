package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "calcgraph"

// Статусы в метках.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics — Prometheus метрики вычислений.
type Metrics struct {
	calculations        *prometheus.CounterVec
	calculationDuration prometheus.Histogram
	nodeRuns            *prometheus.CounterVec
	nodeDuration        *prometheus.HistogramVec
}

// NewMetrics создаёт метрики и регистрирует их в reg.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of graph calculations",
		}, []string{"status"}),

		calculationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Duration of graph calculations",
			Buckets:   prometheus.DefBuckets,
		}),

		nodeRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_runs_total",
			Help:      "Total number of node executions",
		}, []string{"node", "status"}),

		nodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "node_duration_seconds",
			Help:      "Duration of node executions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"node"}),
	}
}

// ObserveNode учитывает выполнение узла.
func (m *Metrics) ObserveNode(node string, d time.Duration, err error) {
	m.nodeRuns.WithLabelValues(node, status(err)).Inc()
	m.nodeDuration.WithLabelValues(node).Observe(d.Seconds())
}

// ObserveCalculation учитывает вычисление графа.
func (m *Metrics) ObserveCalculation(d time.Duration, err error) {
	m.calculations.WithLabelValues(status(err)).Inc()
	m.calculationDuration.Observe(d.Seconds())
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
