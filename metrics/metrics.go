package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/babylonlabs-io/beefy-sampler/sampling"
)

// Operation labels
const (
	OpCombined = "combined"
	OpStatic   = "static"
	OpDynamic  = "dynamic"
	OpRequired = "required"
)

// SamplerMetrics records calculator invocations on a private registry.
type SamplerMetrics struct {
	registry *prometheus.Registry

	computations *prometheus.CounterVec
	domainErrors *prometheus.CounterVec
	failures     *prometheus.CounterVec
	sampleCount  *prometheus.GaugeVec
	sampleSizes  *prometheus.HistogramVec
}

var (
	samplerMetricsInstance *SamplerMetrics
	samplerMetricsOnce     sync.Once
)

// NewSamplerMetrics returns the process wide collectors.
func NewSamplerMetrics() *SamplerMetrics {
	samplerMetricsOnce.Do(func() {
		samplerMetricsInstance = NewSamplerMetricsWithRegistry(prometheus.NewRegistry())
	})

	return samplerMetricsInstance
}

// NewSamplerMetricsWithRegistry registers fresh collectors on registry.
func NewSamplerMetricsWithRegistry(registry *prometheus.Registry) *SamplerMetrics {
	factory := promauto.With(registry)

	return &SamplerMetrics{
		registry: registry,
		computations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampler_computations_total",
				Help: "The total number of successful sample count computations",
			},
			[]string{"operation"},
		),
		domainErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampler_domain_errors_total",
				Help: "The total number of computations rejected because of out-of-domain inputs",
			},
			[]string{"operation"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampler_failures_total",
				Help: "The total number of computations failing for any other reason",
			},
			[]string{"operation"},
		),
		sampleCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sampler_last_sample_count",
				Help: "The last computed number of signatures to sample",
			},
			[]string{"operation"},
		),
		sampleSizes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sampler_sample_count",
				Help:    "The distribution of computed sample counts",
				Buckets: prometheus.LinearBuckets(0, 8, 16),
			},
			[]string{"operation"},
		),
	}
}

// Observe records the outcome of one computation.
func (sm *SamplerMetrics) Observe(operation string, samples uint64, err error) {
	if sm == nil {
		return
	}
	switch {
	case err == nil:
		sm.computations.WithLabelValues(operation).Inc()
		sm.sampleCount.WithLabelValues(operation).Set(float64(samples))
		sm.sampleSizes.WithLabelValues(operation).Observe(float64(samples))
	case errors.Is(err, sampling.ErrDomain):
		sm.domainErrors.WithLabelValues(operation).Inc()
	default:
		sm.failures.WithLabelValues(operation).Inc()
	}
}

func (sm *SamplerMetrics) Registry() *prometheus.Registry {
	return sm.registry
}

// WriteToFile writes the registry in the text exposition format, suitable
// for the node exporter textfile collector.
func (sm *SamplerMetrics) WriteToFile(path string) error {
	return prometheus.WriteToTextfile(path, sm.registry)
}
