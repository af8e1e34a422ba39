//nolint:revive
package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/beefy-sampler/util"
)

func TestMinMaxUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []uint64
		min    uint64
		max    uint64
	}{
		{name: "empty", values: nil, min: 0, max: 0},
		{name: "single", values: []uint64{7}, min: 7, max: 7},
		{name: "ascending", values: []uint64{1, 2, 3}, min: 1, max: 3},
		{name: "descending", values: []uint64{30, 20, 10}, min: 10, max: 30},
		{name: "zero in the middle", values: []uint64{5, 0, 9}, min: 0, max: 9},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.min, util.MinUint64(tt.values...))
			require.Equal(t, tt.max, util.MaxUint64(tt.values...))
		})
	}
}

func TestMakeDirectoryAndFileExists(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.False(t, util.FileExists(dir))
	require.NoError(t, util.MakeDirectory(dir))
	require.True(t, util.FileExists(dir))
	// idempotent
	require.NoError(t, util.MakeDirectory(dir))

	file := filepath.Join(dir, "sampler.conf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	require.True(t, util.FileExists(file))
	// stat fails with ENOTDIR, which is not a missing file
	require.False(t, util.FileExists(filepath.Join(file, "child")))
}

func TestCleanAndExpandPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", util.CleanAndExpandPath(""))
	require.Equal(t, filepath.Clean("/tmp/x/y"), util.CleanAndExpandPath("/tmp/x/../x/y/"))

	expanded := util.CleanAndExpandPath("~/sampler")
	require.True(t, filepath.IsAbs(expanded))
	require.Equal(t, "sampler", filepath.Base(expanded))
}
