package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/beefy-sampler/gasplot"
)

func CommandPlotGas() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot-gas [series-file] [output-file]",
		Short: "Renders measured verification gas costs as a line chart.",
		Long: `Reads a JSON file holding ordered (signatures, gas) measurements and renders
a labeled line chart. The image format follows the output file extension
(png, svg, pdf, ...).`,
		Example: `beefy-sampler plot-gas ./gas.json ./gas.png --width 10`,
		Args:    cobra.ExactArgs(2),
		RunE:    runPlotGasCmd,
	}
	cmd.Flags().Float64(WidthFlag, 0, "The chart width in inches; defaults to the config value")
	cmd.Flags().Float64(HeightFlag, 0, "The chart height in inches; defaults to the config value")

	return cmd
}

func runPlotGasCmd(cmd *cobra.Command, args []string) error {
	sctx, err := GetSamplerContext(cmd)
	if err != nil {
		return err
	}

	width, height := sctx.Config.GasPlot.Width, sctx.Config.GasPlot.Height
	if cmd.Flags().Changed(WidthFlag) {
		if width, err = cmd.Flags().GetFloat64(WidthFlag); err != nil {
			return fmt.Errorf("failed to read flag %s: %w", WidthFlag, err)
		}
	}
	if cmd.Flags().Changed(HeightFlag) {
		if height, err = cmd.Flags().GetFloat64(HeightFlag); err != nil {
			return fmt.Errorf("failed to read flag %s: %w", HeightFlag, err)
		}
	}

	series, err := gasplot.LoadSeries(args[0])
	if err != nil {
		return fmt.Errorf("failed to load gas series: %w", err)
	}

	if err := gasplot.Render(series, args[1], width, height); err != nil {
		return err
	}
	sctx.Logger.Info("gas chart rendered",
		zap.String("series", args[0]),
		zap.String("output", args[1]),
		zap.Int("points", len(series.Points)),
	)

	return nil
}
