package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/blockdeco/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize blockdeco configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure blockdeco for your site and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		loggerFromContext(cmd.Context()).Info("wrote config", "path", cfgFile, "blocks", cfg.Blocks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
