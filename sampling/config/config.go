package config

import (
	"fmt"
	"path/filepath"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap/zapcore"

	"github.com/babylonlabs-io/beefy-sampler/log"
	"github.com/babylonlabs-io/beefy-sampler/sampling"
	"github.com/babylonlabs-io/beefy-sampler/util"
)

// Constants for config default values
const (
	defaultLogLevel       = zapcore.InfoLevel
	defaultLogFormat      = log.FormatConsole
	defaultLogDirname     = "logs"
	defaultLogFilename    = "sampler.log"
	defaultConfigFileName = "sampler.conf"
	defaultPlotWidth      = 8.0
	defaultPlotHeight     = 4.0
)

var (
	//   C:\Users\<username>\AppData\Local\ on Windows
	//   ~/.beefy-sampler on Linux
	//   ~/Users/<username>/Library/Application Support/Beefy-sampler on MacOS
	DefaultSamplerDir = btcutil.AppDataDir("beefy-sampler", false)
)

// Config is the main config for the beefy-sampler cli command
type Config struct {
	LogLevel  string `long:"loglevel" description:"Logging level for all subsystems" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	LogFormat string `long:"logformat" description:"Encoding of the log output" choice:"console" choice:"json" choice:"logfmt"`

	Scheme *SchemeConfig `group:"scheme" namespace:"scheme"`

	GasPlot *GasPlotConfig `group:"gasplot" namespace:"gasplot"`

	MetricsFile string `long:"metricsfile" description:"If set, the Prometheus metrics are written to this file in text exposition format on exit"`
}

func DefaultConfigWithHome(homePath string) Config {
	schemeCfg := DefaultSchemeConfig()
	plotCfg := DefaultGasPlotConfig()
	cfg := Config{
		LogLevel:  defaultLogLevel.String(),
		LogFormat: defaultLogFormat,
		Scheme:    &schemeCfg,
		GasPlot:   &plotCfg,
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func DefaultConfig() Config {
	return DefaultConfigWithHome(DefaultSamplerDir)
}

func CfgFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

// LoadConfig initializes and parses the config using a config file.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Load configuration file overwriting defaults with any specified options
//  3. Validate the result
func LoadConfig(homePath string) (*Config, error) {
	cfgFile := CfgFile(homePath)
	if !util.FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	cfg := DefaultConfigWithHome(homePath)
	fileParser := flags.NewParser(&cfg, flags.Default)
	if err := flags.NewIniParser(fileParser).ParseFile(cfgFile); err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteConfig stores cfg as an ini file under homePath, including comments
// and default values.
func WriteConfig(cfg *Config, homePath string) error {
	fileParser := flags.NewParser(cfg, flags.Default)

	return flags.NewIniParser(fileParser).WriteFile(CfgFile(homePath), flags.IniIncludeComments|flags.IniIncludeDefaults)
}

// Validate checks the given configuration to be sane.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	switch cfg.LogFormat {
	case log.FormatConsole, log.FormatJSON, log.FormatLogfmt:
	default:
		return fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	if cfg.Scheme == nil {
		return fmt.Errorf("scheme config cannot be empty")
	}
	if err := cfg.Scheme.Validate(); err != nil {
		return fmt.Errorf("scheme configuration validation failed: %w", err)
	}

	if cfg.GasPlot == nil {
		return fmt.Errorf("gas plot config cannot be empty")
	}
	if err := cfg.GasPlot.Validate(); err != nil {
		return fmt.Errorf("gas plot configuration validation failed: %w", err)
	}

	return nil
}

// ParseRatio parses a positive decimal, as accepted for the ratio per
// validator.
func ParseRatio(s string) (float64, error) {
	dec, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio per validator %q: %w", s, err)
	}
	if !dec.IsPositive() {
		return 0, errorsmod.Wrapf(sampling.ErrDomain, "ratio per validator must be positive, got %s", s)
	}

	return dec.Float64()
}

// ParseSlashRate parses a decimal in (0, 1].
func ParseSlashRate(s string) (float64, error) {
	dec, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return 0, fmt.Errorf("invalid slash rate %q: %w", s, err)
	}
	if !dec.IsPositive() {
		return 0, errorsmod.Wrapf(sampling.ErrDomain, "slash rate must be positive, got %s", s)
	}
	if dec.GT(math.LegacyOneDec()) {
		return 0, fmt.Errorf("slash rate must be in (0, 1], got %s", s)
	}

	return dec.Float64()
}

// SchemeParams builds the sampling parameters for a validator set of the
// given size and reuse count out of the configured scheme.
func (cfg *Config) SchemeParams(validatorsLength, signatureUseCount uint64) (sampling.Params, error) {
	ratio, err := ParseRatio(cfg.Scheme.RatioPerValidator)
	if err != nil {
		return sampling.Params{}, err
	}
	slashRate, err := ParseSlashRate(cfg.Scheme.SlashRate)
	if err != nil {
		return sampling.Params{}, err
	}

	p := sampling.Params{
		RatioPerValidator:  ratio,
		ValidatorsLength:   validatorsLength,
		SlashRate:          slashRate,
		RandaoCommitExpiry: cfg.Scheme.RandaoCommitExpiry,
		SignatureUseCount:  signatureUseCount,
	}

	return p, p.Validate()
}
