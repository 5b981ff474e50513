package engine

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Outcome labels of the operations counter.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, errors.New("nil metrics registerer")
	}

	m := &metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "jose",
				Subsystem: "engine",
				Name:      "operations_total",
				Help:      "Total number of JOSE operations",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "jose",
				Subsystem: "engine",
				Name:      "operation_duration_seconds",
				Help:      "JOSE operation duration in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records the outcome of an operation that started at start.
func (e *Engine) observe(op string, start time.Time, err error) {
	if err != nil {
		fields := []zap.Field{zap.String("op", op), zap.Error(err)}
		var engineErr *Error
		if errors.As(err, &engineErr) {
			fields = append(fields, zap.String("kind", engineErr.Kind.Error()))
		}
		e.logger.Warn("jose operation failed", fields...)
	}

	if e.metrics == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}

	e.metrics.operations.WithLabelValues(op, outcome).Inc()
	e.metrics.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
