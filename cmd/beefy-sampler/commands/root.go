package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/beefy-sampler/metrics"
	samplercfg "github.com/babylonlabs-io/beefy-sampler/sampling/config"
	"github.com/babylonlabs-io/beefy-sampler/version"
)

const BinaryName = "beefy-sampler"

// NewRootCmd creates a new root command for beefy-sampler with every sub
// command attached. It is called once in the main function.
func NewRootCmd(sm *metrics.SamplerMetrics) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   BinaryName,
		Short: fmt.Sprintf("%s - BEEFY signature sampling calculator.", BinaryName),
		Long: fmt.Sprintf(`%s computes how many validator signatures a BEEFY light client has to
sample for a target security level, and charts measured verification gas.`, BinaryName),
		SilenceErrors:     false,
		PersistentPreRunE: PersistSamplerCtx(sm),
	}

	rootCmd.PersistentFlags().String(HomeFlag, samplercfg.DefaultSamplerDir, "The application home directory")
	rootCmd.PersistentFlags().String(LogLevelFlag, "", "Logging level, overrides the config value")
	rootCmd.PersistentFlags().String(LogFormatFlag, "", "Logging format (console, json, logfmt), overrides the config value")
	rootCmd.PersistentFlags().String(MetricsFileFlag, "", "Write Prometheus metrics to this file on exit, overrides the config value")

	rootCmd.AddCommand(CommandInit(BinaryName), CommandPlotGas())
	AddSamplesCommands(rootCmd)
	version.AddVersionCommand(rootCmd, BinaryName)

	return rootCmd
}

// Execute runs rootCmd and then closes the context of the command that ran,
// so metrics are exported for failed computations too.
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	executed, err := rootCmd.ExecuteContextC(ctx)
	if closeErr := CloseSamplerCtx(executed); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	return err
}
