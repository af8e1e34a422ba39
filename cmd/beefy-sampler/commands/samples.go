package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/beefy-sampler/metrics"
	"github.com/babylonlabs-io/beefy-sampler/sampling"
	samplercfg "github.com/babylonlabs-io/beefy-sampler/sampling/config"
)

// AddSamplesCommands adds the calculator commands to cmd.
func AddSamplesCommands(cmd *cobra.Command) {
	cmd.AddCommand(
		CommandCombined(),
		CommandStatic(),
		CommandDynamic(),
		CommandRequired(),
		CommandSweep(),
	)
}

func CommandCombined() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combined",
		Short: "Computes the number of signatures to sample for the full parameter set.",
		Example: `beefy-sampler combined --ratio 2.5 --validators 1000 --slash-rate 0.25 --randao-commit-expiry 3
beefy-sampler combined --validators 297 --uses 4`,
		Args: cobra.NoArgs,
		RunE: runCombinedCmd,
	}
	addSchemeFlags(cmd.Flags())
	addValidatorSetFlags(cmd.Flags())

	return cmd
}

func CommandStatic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "static",
		Short: "Computes the precomputable part of the sample count, independent of the validator set.",
		Long: `Computes ceil(log2(ratio * 1/slash-rate * randao-biasability)).
The result does not depend on the validator set and is meant to be cached,
e.g. as a light client initialization constant.`,
		Example: `beefy-sampler static --slash-rate 0.25 --randao-commit-expiry 24 --bits`,
		Args:    cobra.NoArgs,
		RunE:    runStaticCmd,
	}
	addSchemeFlags(cmd.Flags())
	cmd.Flags().Bool(BitsFlag, false, "Also print the unrounded log2 contribution, needed to recombine the exact combined count")

	return cmd
}

func CommandDynamic() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dynamic",
		Short:   "Computes the per-round part of the sample count from the validator set size and reuse count.",
		Example: `beefy-sampler dynamic --validators 1000 --uses 4`,
		Args:    cobra.NoArgs,
		RunE:    runDynamicCmd,
	}
	addValidatorSetFlags(cmd.Flags())

	return cmd
}

func CommandRequired() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "required",
		Short: "Computes the number of signatures a light client demands, capped at a third of the set plus one.",
		Long: `Adds the dynamic sample count to the static one and caps the sum at the
one third of the validator set plus one. The static count is computed from the
scheme parameters unless given with --static-samples.`,
		Example: `beefy-sampler required --validators 297 --uses 2
beefy-sampler required --validators 297 --static-samples 17`,
		Args: cobra.NoArgs,
		RunE: runRequiredCmd,
	}
	addSchemeFlags(cmd.Flags())
	addValidatorSetFlags(cmd.Flags())
	cmd.Flags().Uint64(StaticSamplesFlag, 0, "A cached static sample count; computed from the scheme parameters when unset")

	return cmd
}

func addSchemeFlags(f *pflag.FlagSet) {
	f.String(RatioFlag, "", "The ratio per validator, as a decimal; defaults to the config value")
	f.String(SlashRateFlag, "", "The slash rate in (0, 1], as a decimal; defaults to the config value")
	f.Uint64(RandaoCommitExpiryFlag, 0, "The RANDAO commit expiry in blocks; defaults to the config value")
}

func addValidatorSetFlags(f *pflag.FlagSet) {
	f.Uint64(ValidatorsFlag, 0, "The validator set size; defaults to the config value")
	f.Uint64(UsesFlag, 0, "The number of times the sampled signature set was already used")
}

// schemeParams resolves the sampling parameters, preferring flags over the
// config values.
func schemeParams(cmd *cobra.Command, cfg *samplercfg.Config) (sampling.Params, error) {
	scheme := *cfg.Scheme
	flags := cmd.Flags()

	if f := flags.Lookup(RatioFlag); f != nil && f.Changed {
		scheme.RatioPerValidator = f.Value.String()
	}
	if f := flags.Lookup(SlashRateFlag); f != nil && f.Changed {
		scheme.SlashRate = f.Value.String()
	}
	if f := flags.Lookup(RandaoCommitExpiryFlag); f != nil && f.Changed {
		expiry, err := flags.GetUint64(RandaoCommitExpiryFlag)
		if err != nil {
			return sampling.Params{}, fmt.Errorf("failed to read flag %s: %w", RandaoCommitExpiryFlag, err)
		}
		scheme.RandaoCommitExpiry = expiry
	}
	if f := flags.Lookup(ValidatorsFlag); f != nil && f.Changed {
		validators, err := flags.GetUint64(ValidatorsFlag)
		if err != nil {
			return sampling.Params{}, fmt.Errorf("failed to read flag %s: %w", ValidatorsFlag, err)
		}
		scheme.ValidatorsLength = validators
	}

	var uses uint64
	if flags.Lookup(UsesFlag) != nil {
		var err error
		uses, err = flags.GetUint64(UsesFlag)
		if err != nil {
			return sampling.Params{}, fmt.Errorf("failed to read flag %s: %w", UsesFlag, err)
		}
	}

	resolved := samplercfg.Config{Scheme: &scheme}

	return resolved.SchemeParams(scheme.ValidatorsLength, uses)
}

// runComputation resolves the parameters, runs compute and reports the
// result to stdout, the log and the metrics.
func runComputation(cmd *cobra.Command, operation string, compute func(p sampling.Params) (uint64, error)) error {
	sctx, err := GetSamplerContext(cmd)
	if err != nil {
		return err
	}

	p, err := schemeParams(cmd, sctx.Config)
	if err == nil {
		var samples uint64
		samples, err = compute(p)
		if err == nil {
			sctx.Metrics.Observe(operation, samples, nil)
			sctx.Logger.Info("computed sample count",
				zap.String("operation", operation),
				zap.Stringer("params", p),
				zap.Uint64("samples", samples),
			)
			cmd.Println(samples)

			return nil
		}
	}

	sctx.Metrics.Observe(operation, 0, err)
	sctx.Logger.Error("failed to compute sample count",
		zap.String("operation", operation),
		zap.Error(err),
	)

	return err
}

func runCombinedCmd(cmd *cobra.Command, _ []string) error {
	return runComputation(cmd, metrics.OpCombined, sampling.Params.Combined)
}

func runStaticCmd(cmd *cobra.Command, _ []string) error {
	printBits, err := cmd.Flags().GetBool(BitsFlag)
	if err != nil {
		return fmt.Errorf("failed to read flag %s: %w", BitsFlag, err)
	}

	if err := runComputation(cmd, metrics.OpStatic, sampling.Params.Static); err != nil {
		return err
	}
	if !printBits {
		return nil
	}

	sctx, err := GetSamplerContext(cmd)
	if err != nil {
		return err
	}
	p, err := schemeParams(cmd, sctx.Config)
	if err != nil {
		return err
	}
	staticBits, err := sampling.StaticSecurityBits(p.RatioPerValidator, p.SlashRate, p.RandaoCommitExpiry)
	if err != nil {
		return err
	}
	cmd.Printf("%.17g\n", staticBits)

	return nil
}

func runDynamicCmd(cmd *cobra.Command, _ []string) error {
	return runComputation(cmd, metrics.OpDynamic, sampling.Params.Dynamic)
}

func runRequiredCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed(StaticSamplesFlag) {
		return runComputation(cmd, metrics.OpRequired, sampling.Params.Required)
	}

	static, err := flags.GetUint64(StaticSamplesFlag)
	if err != nil {
		return fmt.Errorf("failed to read flag %s: %w", StaticSamplesFlag, err)
	}

	return runComputation(cmd, metrics.OpRequired, func(p sampling.Params) (uint64, error) {
		return sampling.RequiredSignatures(static, p.ValidatorsLength, p.SignatureUseCount)
	})
}
