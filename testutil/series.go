package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/beefy-sampler/gasplot"
)

// WriteSeriesFile encodes a gas series with the given points into a file
// under a fresh temporary directory and returns its path.
func WriteSeriesFile(t *testing.T, title string, points ...gasplot.Point) string {
	t.Helper()

	contents, err := json.Marshal(gasplot.Series{Title: title, Points: points})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, contents, 0600))

	return path
}

// LinearGasPoints returns n measurements growing by step signatures, with a
// fixed base cost and a constant cost per signature.
func LinearGasPoints(n int, step, base, perSignature uint64) []gasplot.Point {
	points := make([]gasplot.Point, n)
	for i := range points {
		sigs := uint64(i+1) * step
		points[i] = gasplot.Point{Signatures: sigs, Gas: base + sigs*perSignature}
	}

	return points
}
