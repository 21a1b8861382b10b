// Package govalidmetrics instruments schema.Validator.Validate calls with
// Prometheus counters and a histogram via promauto, narrowed to the
// handful of series a validation engine actually needs: how many
// validations ran, how many failed, and how long they took, broken down
// by schema name.
package govalidmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder receives one observation per top-level Validate call.
type Recorder interface {
	Observe(schemaName string, duration time.Duration, err error)
}

// Prometheus is a Recorder backed by three promauto-registered series:
// a total counter, a failure counter, and a duration histogram, all
// labeled by schema name.
type Prometheus struct {
	total    *prometheus.CounterVec
	failed   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheus registers its series against reg (prometheus.DefaultRegisterer
// when reg is nil) under the given namespace, e.g. "govalid".
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Prometheus{
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Total number of top-level schema validations performed.",
		}, []string{"schema"}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of top-level schema validations that returned an error.",
		}, []string{"schema"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Time spent in a top-level schema validation call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"schema"}),
	}
}

// Observe implements Recorder.
func (p *Prometheus) Observe(schemaName string, duration time.Duration, err error) {
	p.total.WithLabelValues(schemaName).Inc()
	p.duration.WithLabelValues(schemaName).Observe(duration.Seconds())
	if err != nil {
		p.failed.WithLabelValues(schemaName).Inc()
	}
}
