package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/beefy-sampler/sampling"
	"github.com/babylonlabs-io/beefy-sampler/sampling/config"
)

var samplerCfg = config.DefaultConfig()

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     &samplerCfg,
			wantErr: "",
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "config cannot be nil",
		},
		{
			name: "unknown log level",
			cfg: &config.Config{
				LogLevel:  "verbose",
				LogFormat: "console",
				Scheme:    defaultSchemeConfig(),
				GasPlot:   defaultGasPlotConfig(),
			},
			wantErr: "invalid log level: unsupported log level: verbose",
		},
		{
			name: "unknown log format",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "xml",
				Scheme:    defaultSchemeConfig(),
				GasPlot:   defaultGasPlotConfig(),
			},
			wantErr: `invalid log format "xml"`,
		},
		{
			name: "nil scheme config",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				GasPlot:   defaultGasPlotConfig(),
			},
			wantErr: "scheme config cannot be empty",
		},
		{
			name: "zero slash rate",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				Scheme: &config.SchemeConfig{
					RatioPerValidator: "2.5",
					SlashRate:         "0",
					ValidatorsLength:  10,
				},
				GasPlot: defaultGasPlotConfig(),
			},
			wantErr: "scheme configuration validation failed: slash rate must be positive, got 0",
		},
		{
			name: "slash rate above one",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				Scheme: &config.SchemeConfig{
					RatioPerValidator: "2.5",
					SlashRate:         "1.5",
					ValidatorsLength:  10,
				},
				GasPlot: defaultGasPlotConfig(),
			},
			wantErr: "scheme configuration validation failed: slash rate must be in (0, 1], got 1.5",
		},
		{
			name: "negative ratio",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				Scheme: &config.SchemeConfig{
					RatioPerValidator: "-1",
					SlashRate:         "0.25",
					ValidatorsLength:  10,
				},
				GasPlot: defaultGasPlotConfig(),
			},
			wantErr: "scheme configuration validation failed: ratio per validator must be positive, got -1",
		},
		{
			name: "malformed ratio",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				Scheme: &config.SchemeConfig{
					RatioPerValidator: "two",
					SlashRate:         "0.25",
					ValidatorsLength:  10,
				},
				GasPlot: defaultGasPlotConfig(),
			},
			wantErr: `invalid ratio per validator "two"`,
		},
		{
			name: "empty validator set",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				Scheme: &config.SchemeConfig{
					RatioPerValidator: "2.5",
					SlashRate:         "0.25",
				},
				GasPlot: defaultGasPlotConfig(),
			},
			wantErr: "scheme configuration validation failed: invalid validatorslength: 0",
		},
		{
			name: "zero chart width",
			cfg: &config.Config{
				LogLevel:  "info",
				LogFormat: "console",
				Scheme:    defaultSchemeConfig(),
				GasPlot:   &config.GasPlotConfig{Width: 0, Height: 4},
			},
			wantErr: "gas plot configuration validation failed: invalid chart size: 0x4",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestWriteAndLoadConfig(t *testing.T) {
	t.Parallel()

	homePath := t.TempDir()

	_, err := config.LoadConfig(homePath)
	require.ErrorContains(t, err, "specified config file does not exist")

	cfg := config.DefaultConfigWithHome(homePath)
	cfg.Scheme.SlashRate = "0.1"
	cfg.Scheme.RandaoCommitExpiry = 24
	cfg.LogFormat = "logfmt"
	require.NoError(t, config.WriteConfig(&cfg, homePath))

	loaded, err := config.LoadConfig(homePath)
	require.NoError(t, err)
	require.Equal(t, "0.1", loaded.Scheme.SlashRate)
	require.Equal(t, uint64(24), loaded.Scheme.RandaoCommitExpiry)
	require.Equal(t, "logfmt", loaded.LogFormat)
	require.Equal(t, cfg.Scheme.ValidatorsLength, loaded.Scheme.ValidatorsLength)
}

func TestSchemeParams(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	p, err := cfg.SchemeParams(1000, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, p.RatioPerValidator)
	require.Equal(t, 0.25, p.SlashRate)
	require.Equal(t, uint64(3), p.RandaoCommitExpiry)

	combined, err := p.Combined()
	require.NoError(t, err)
	require.Equal(t, uint64(28), combined)

	_, err = cfg.SchemeParams(0, 0)
	require.ErrorIs(t, err, sampling.ErrDomain)
}

func TestParseDecimals(t *testing.T) {
	t.Parallel()

	v, err := config.ParseRatio("0.000001")
	require.NoError(t, err)
	require.InDelta(t, 1e-6, v, 1e-18)

	_, err = config.ParseRatio("0")
	require.ErrorIs(t, err, sampling.ErrDomain)

	_, err = config.ParseRatio("two")
	require.Error(t, err)
	require.NotErrorIs(t, err, sampling.ErrDomain)

	_, err = config.ParseSlashRate("-0.5")
	require.ErrorIs(t, err, sampling.ErrDomain)

	v, err = config.ParseSlashRate("1")
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = config.ParseSlashRate("1.000000000000000001")
	require.Error(t, err)
	require.NotErrorIs(t, err, sampling.ErrDomain)
}

func defaultSchemeConfig() *config.SchemeConfig {
	c := config.DefaultSchemeConfig()
	return &c
}

func defaultGasPlotConfig() *config.GasPlotConfig {
	c := config.DefaultGasPlotConfig()
	return &c
}
