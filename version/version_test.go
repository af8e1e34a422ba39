package version_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/beefy-sampler/version"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "beefy-sampler"}
	version.AddVersionCommand(root, "beefy-sampler")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "Version:       "+version.Version())
	require.Contains(t, out.String(), "Git Commit:")
	require.Contains(t, version.Summary(), "version: "+version.Version())
}
