package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/beefy-sampler/log"
	"github.com/babylonlabs-io/beefy-sampler/metrics"
	samplercfg "github.com/babylonlabs-io/beefy-sampler/sampling/config"
	"github.com/babylonlabs-io/beefy-sampler/util"
	"github.com/babylonlabs-io/beefy-sampler/version"
)

type samplerCtxKey struct{}

// SamplerContext carries what every command needs once the root command
// resolved flags and config.
type SamplerContext struct {
	HomeDir string
	Config  *samplercfg.Config
	Logger  *zap.Logger
	Metrics *metrics.SamplerMetrics

	logFile io.Closer
}

// GetSamplerContext returns the context set by PersistSamplerCtx.
func GetSamplerContext(cmd *cobra.Command) (*SamplerContext, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("command %s has no context", cmd.Name())
	}
	sctx, ok := cmd.Context().Value(samplerCtxKey{}).(*SamplerContext)
	if !ok || sctx == nil {
		return nil, fmt.Errorf("sampler context is not set for command %s", cmd.Name())
	}

	return sctx, nil
}

// PersistSamplerCtx loads the config from the home directory, falling back
// to the defaults when there is none, applies the root flags on top of it and
// builds the logger. Flags have preference over the values in the config.
// Once a home directory holds a config, logs are also appended to its log file.
func PersistSamplerCtx(sm *metrics.SamplerMetrics) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		// set the default command outputs
		cmd.SetOut(cmd.OutOrStdout())
		cmd.SetErr(cmd.ErrOrStderr())

		homeDir, err := cmd.Flags().GetString(HomeFlag)
		if err != nil {
			return fmt.Errorf("failed to read flag %s: %w", HomeFlag, err)
		}
		homeDir, err = filepath.Abs(util.CleanAndExpandPath(homeDir))
		if err != nil {
			return err
		}

		cfg, loaded, err := loadConfig(cmd, homeDir)
		if err != nil {
			return err
		}

		if err := FillConfigFromFlags(cfg, cmd.Flags()); err != nil {
			return err
		}

		sctx := &SamplerContext{
			HomeDir: homeDir,
			Config:  cfg,
			Metrics: sm,
		}
		if loaded {
			logFile := samplercfg.LogFile(homeDir)
			logger, f, err := log.NewRootLoggerWithFile(logFile, cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to create logger with file %s: %w", logFile, err)
			}
			sctx.Logger = logger
			sctx.logFile = f
		} else {
			logger, err := log.NewRootLogger(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			sctx.Logger = logger
		}
		sctx.Logger.Debug("sampler context ready",
			zap.String("home", homeDir),
			zap.String("build", version.Summary()),
		)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, samplerCtxKey{}, sctx))

		return nil
	}
}

// loadConfig returns the config stored in homeDir and whether it was read
// from there. The defaults are used when there is no config yet, or when the
// command is about to overwrite it with --force.
func loadConfig(cmd *cobra.Command, homeDir string) (*samplercfg.Config, bool, error) {
	if f := cmd.Flags().Lookup(ForceFlag); f != nil && f.Value.String() == "true" {
		defaultCfg := samplercfg.DefaultConfigWithHome(homeDir)
		return &defaultCfg, false, nil
	}

	cfg, err := samplercfg.LoadConfig(homeDir)
	if err != nil {
		if util.FileExists(samplercfg.CfgFile(homeDir)) {
			return nil, false, fmt.Errorf("failed to load config from %s: %w", homeDir, err)
		}
		// no config found, continue with the defaults
		defaultCfg := samplercfg.DefaultConfigWithHome(homeDir)
		return &defaultCfg, false, nil
	}

	return cfg, true, nil
}

// FillConfigFromFlags overwrites config values with the root flags that were
// explicitly set.
func FillConfigFromFlags(cfg *samplercfg.Config, flagSet *pflag.FlagSet) error {
	if flagSet.Changed(LogLevelFlag) {
		lvl, err := flagSet.GetString(LogLevelFlag)
		if err != nil {
			return fmt.Errorf("failed to read flag %s: %w", LogLevelFlag, err)
		}
		cfg.LogLevel = lvl
	}
	if flagSet.Changed(LogFormatFlag) {
		format, err := flagSet.GetString(LogFormatFlag)
		if err != nil {
			return fmt.Errorf("failed to read flag %s: %w", LogFormatFlag, err)
		}
		cfg.LogFormat = format
	}
	if flagSet.Changed(MetricsFileFlag) {
		metricsFile, err := flagSet.GetString(MetricsFileFlag)
		if err != nil {
			return fmt.Errorf("failed to read flag %s: %w", MetricsFileFlag, err)
		}
		cfg.MetricsFile = metricsFile
	}

	return cfg.Validate()
}

// CloseSamplerCtx writes the metrics to the configured file, if any, and
// releases the logger. It runs after every command, whether it failed or not.
func CloseSamplerCtx(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	sctx, err := GetSamplerContext(cmd)
	if err != nil {
		// commands that never set up the context have nothing to close
		return nil //nolint:nilerr
	}

	var errs []error
	if sctx.Config.MetricsFile != "" && sctx.Metrics != nil {
		if err := sctx.Metrics.WriteToFile(sctx.Config.MetricsFile); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics to %s: %w", sctx.Config.MetricsFile, err))
		} else {
			sctx.Logger.Debug("metrics written", zap.String("file", sctx.Config.MetricsFile))
		}
	}

	_ = sctx.Logger.Sync()
	if sctx.logFile != nil {
		if err := sctx.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
		}
		sctx.logFile = nil
	}

	return errors.Join(errs...)
}
