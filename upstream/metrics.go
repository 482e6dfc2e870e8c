package upstream

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "mifos"

// Metrics collects upstream call metrics
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func (m *Metrics) observe(request *Request, result *Result, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	switch {
	case err != nil:
		outcome = "transport_error"
	case result.Failure != nil:
		outcome = strconv.Itoa(result.Failure.StatusCode)
	}
	m.requests.WithLabelValues(request.Name, request.Method, outcome).Inc()
	m.duration.WithLabelValues(request.Name, request.Method).Observe(elapsed.Seconds())
}

// NewMetrics creates metrics and registers them with the supplied registerer
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	ret := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of upstream requests by tool, method and outcome",
		}, []string{"tool", "method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Upstream request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool", "method"}),
	}
	if err := registerer.Register(ret.requests); err != nil {
		existing, err := alreadyRegistered(err)
		if err != nil {
			return nil, err
		}
		ret.requests = existing.(*prometheus.CounterVec)
	}
	if err := registerer.Register(ret.duration); err != nil {
		existing, err := alreadyRegistered(err)
		if err != nil {
			return nil, err
		}
		ret.duration = existing.(*prometheus.HistogramVec)
	}
	return ret, nil
}

func alreadyRegistered(err error) (prometheus.Collector, error) {
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return already.ExistingCollector, nil
	}
	return nil, err
}
