package config

import (
	"fmt"
)

var (
	defaultRatioPerValidator  = "2.5"
	defaultSlashRate          = "0.25"
	defaultRandaoCommitExpiry = uint64(3)
	defaultValidatorsLength   = uint64(297)
)

// SchemeConfig holds the slowly changing parameters of the sampling scheme.
// Real-valued parameters are kept as decimal strings.
type SchemeConfig struct {
	RatioPerValidator  string `long:"ratiopervalidator" description:"The acceptable fraction of stake controlled by an adversarial validator, scaled"`
	SlashRate          string `long:"slashrate" description:"The fraction of stake an adversary risks losing, in (0, 1]"`
	RandaoCommitExpiry uint64 `long:"randaocommitexpiry" description:"The number of blocks a RANDAO commitment may be delayed before it expires"`
	ValidatorsLength   uint64 `long:"validatorslength" description:"The validator set size used when none is given on the command line"`
}

func DefaultSchemeConfig() SchemeConfig {
	return SchemeConfig{
		RatioPerValidator:  defaultRatioPerValidator,
		SlashRate:          defaultSlashRate,
		RandaoCommitExpiry: defaultRandaoCommitExpiry,
		ValidatorsLength:   defaultValidatorsLength,
	}
}

func (c SchemeConfig) Validate() error {
	if _, err := ParseRatio(c.RatioPerValidator); err != nil {
		return err
	}

	if _, err := ParseSlashRate(c.SlashRate); err != nil {
		return err
	}

	if c.ValidatorsLength == 0 {
		return fmt.Errorf("invalid validatorslength: %d", c.ValidatorsLength)
	}

	return nil
}

// GasPlotConfig sets the rendering options of gas charts.
type GasPlotConfig struct {
	Width  float64 `long:"width" description:"The chart width in inches"`
	Height float64 `long:"height" description:"The chart height in inches"`
}

func DefaultGasPlotConfig() GasPlotConfig {
	return GasPlotConfig{
		Width:  defaultPlotWidth,
		Height: defaultPlotHeight,
	}
}

func (c GasPlotConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid chart size: %vx%v", c.Width, c.Height)
	}

	return nil
}
