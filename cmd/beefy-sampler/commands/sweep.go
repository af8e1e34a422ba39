package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/beefy-sampler/metrics"
	"github.com/babylonlabs-io/beefy-sampler/sampling"
)

func CommandSweep() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulates the sample counts over a range of validator set sizes.",
		Long: `Prints one row per validator set size with the static, dynamic, combined
and required sample counts, and the cap on the required count.`,
		Example: `beefy-sampler sweep --from 100 --to 1000 --step 100 --uses 2`,
		Args:    cobra.NoArgs,
		RunE:    runSweepCmd,
	}
	addSchemeFlags(cmd.Flags())
	cmd.Flags().Uint64(UsesFlag, 0, "The number of times the sampled signature set was already used")
	cmd.Flags().Uint64(FromFlag, 1, "The smallest validator set size")
	cmd.Flags().Uint64(ToFlag, 1000, "The largest validator set size")
	cmd.Flags().Uint64(StepFlag, 100, "The increment between two validator set sizes")

	return cmd
}

func runSweepCmd(cmd *cobra.Command, _ []string) error {
	sctx, err := GetSamplerContext(cmd)
	if err != nil {
		return err
	}

	from, to, step, err := readRange(cmd)
	if err != nil {
		return err
	}

	p, err := schemeParams(cmd, sctx.Config)
	if err != nil {
		return err
	}
	static, err := p.Static()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(w, "validators\tstatic\tdynamic\tcombined\trequired\tmax\t")

	for v := from; v <= to; v += step {
		p.ValidatorsLength = v

		dynamic, err := p.Dynamic()
		if err != nil {
			sctx.Metrics.Observe(metrics.OpDynamic, 0, err)
			return err
		}
		combined, err := p.Combined()
		if err != nil {
			sctx.Metrics.Observe(metrics.OpCombined, 0, err)
			return err
		}
		required, err := sampling.RequiredSignatures(static, v, p.SignatureUseCount)
		if err != nil {
			sctx.Metrics.Observe(metrics.OpRequired, 0, err)
			return err
		}
		sctx.Metrics.Observe(metrics.OpDynamic, dynamic, nil)
		sctx.Metrics.Observe(metrics.OpCombined, combined, nil)
		sctx.Metrics.Observe(metrics.OpRequired, required, nil)

		_, _ = fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t\n",
			v, static, dynamic, combined, required, sampling.MaxRequiredSignatures(v))

		// guard against wrapping around at the top of the uint64 range
		if to-v < step {
			break
		}
	}
	sctx.Metrics.Observe(metrics.OpStatic, static, nil)
	sctx.Logger.Info("sweep done",
		zap.Uint64("from", from),
		zap.Uint64("to", to),
		zap.Uint64("step", step),
	)

	return w.Flush()
}

func readRange(cmd *cobra.Command) (uint64, uint64, uint64, error) {
	flags := cmd.Flags()
	from, err := flags.GetUint64(FromFlag)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read flag %s: %w", FromFlag, err)
	}
	to, err := flags.GetUint64(ToFlag)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read flag %s: %w", ToFlag, err)
	}
	step, err := flags.GetUint64(StepFlag)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read flag %s: %w", StepFlag, err)
	}

	if from == 0 {
		return 0, 0, 0, fmt.Errorf("the validator set size range must start at 1 or more")
	}
	if to < from {
		return 0, 0, 0, fmt.Errorf("invalid range: %d > %d", from, to)
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("step must be positive")
	}

	return from, to, step, nil
}
