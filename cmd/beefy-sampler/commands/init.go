package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	samplercfg "github.com/babylonlabs-io/beefy-sampler/sampling/config"
	"github.com/babylonlabs-io/beefy-sampler/util"
)

// CommandInit returns the init command that writes a default config into the
// home directory.
func CommandInit(binaryName string) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "init",
		Short:   "Initialize a beefy-sampler home directory.",
		Long:    `Creates a new home directory with a default config holding the sampling scheme parameters`,
		Example: fmt.Sprintf(`%s init --home /home/user/.beefy-sampler --force`, binaryName),
		Args:    cobra.NoArgs,
		RunE:    runInitCmd,
	}
	cmd.Flags().Bool(ForceFlag, false, "Override existing configuration")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	sctx, err := GetSamplerContext(cmd)
	if err != nil {
		return err
	}
	homePath := sctx.HomeDir

	force, err := cmd.Flags().GetBool(ForceFlag)
	if err != nil {
		return fmt.Errorf("failed to read flag %s: %w", ForceFlag, err)
	}

	if util.FileExists(samplercfg.CfgFile(homePath)) && !force {
		return fmt.Errorf("config %s already exists", samplercfg.CfgFile(homePath))
	}

	if err := util.MakeDirectory(homePath); err != nil {
		return err
	}
	// Create log directory
	if err := util.MakeDirectory(samplercfg.LogDir(homePath)); err != nil {
		return err
	}

	defaultConfig := samplercfg.DefaultConfigWithHome(homePath)
	if err := samplercfg.WriteConfig(&defaultConfig, homePath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	sctx.Logger.Info("initialized home directory", zap.String("config", samplercfg.CfgFile(homePath)))

	return nil
}
