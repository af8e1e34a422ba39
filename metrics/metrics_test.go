package metrics_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/beefy-sampler/metrics"
	"github.com/babylonlabs-io/beefy-sampler/sampling"
)

func TestObserve(t *testing.T) {
	t.Parallel()

	sm := metrics.NewSamplerMetricsWithRegistry(prometheus.NewRegistry())

	sm.Observe(metrics.OpCombined, 28, nil)
	sm.Observe(metrics.OpCombined, 33, nil)
	sm.Observe(metrics.OpStatic, 0, errorsmod.Wrap(sampling.ErrDomain, "slash rate must be positive"))
	sm.Observe(metrics.OpDynamic, 0, fmt.Errorf("boom"))

	n, err := testutil.GatherAndCount(sm.Registry(), "sampler_computations_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	expected := `
# HELP sampler_computations_total The total number of successful sample count computations
# TYPE sampler_computations_total counter
sampler_computations_total{operation="combined"} 2
# HELP sampler_domain_errors_total The total number of computations rejected because of out-of-domain inputs
# TYPE sampler_domain_errors_total counter
sampler_domain_errors_total{operation="static"} 1
# HELP sampler_failures_total The total number of computations failing for any other reason
# TYPE sampler_failures_total counter
sampler_failures_total{operation="dynamic"} 1
# HELP sampler_last_sample_count The last computed number of signatures to sample
# TYPE sampler_last_sample_count gauge
sampler_last_sample_count{operation="combined"} 33
`
	require.NoError(t, testutil.GatherAndCompare(
		sm.Registry(),
		strings.NewReader(expected),
		"sampler_computations_total",
		"sampler_domain_errors_total",
		"sampler_failures_total",
		"sampler_last_sample_count",
	))
}

func TestWriteToFile(t *testing.T) {
	t.Parallel()

	sm := metrics.NewSamplerMetricsWithRegistry(prometheus.NewRegistry())
	sm.Observe(metrics.OpRequired, 28, nil)

	path := filepath.Join(t.TempDir(), "sampler.prom")
	require.NoError(t, sm.WriteToFile(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), `sampler_computations_total{operation="required"} 1`)
}

func TestNewSamplerMetricsIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, metrics.NewSamplerMetrics(), metrics.NewSamplerMetrics())
}
