package llm

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware records invocation counts and latencies
type MetricsMiddleware struct {
	invocations *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// NewMetricsMiddleware creates the collectors and registers them with reg.
// Collectors already registered under the same names are reused.
func NewMetricsMiddleware(reg prometheus.Registerer) (*MetricsMiddleware, error) {
	invocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bedrock",
		Name:      "invocations_total",
		Help:      "Number of Bedrock model invocations by operation, model and outcome.",
	}, []string{"operation", "model", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bedrock",
		Name:      "invocation_duration_seconds",
		Help:      "Latency of Bedrock model invocations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "model"})

	var err error
	if invocations, err = registerOrReuse(reg, invocations); err != nil {
		return nil, err
	}
	if latency, err = registerOrReuse(reg, latency); err != nil {
		return nil, err
	}

	return &MetricsMiddleware{invocations: invocations, latency: latency}, nil
}

func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *MetricsMiddleware) Name() string { return "metrics" }

func (m *MetricsMiddleware) ProcessRequest(_ context.Context, inv *Invocation) (*Invocation, error) {
	return inv, nil
}

func (m *MetricsMiddleware) ProcessResponse(_ context.Context, inv *Invocation, resp *InvocationResponse, err error) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
		m.latency.WithLabelValues(string(inv.Operation), inv.Model).Observe(resp.Duration.Seconds())
	}
	m.invocations.WithLabelValues(string(inv.Operation), inv.Model, status).Inc()
}
