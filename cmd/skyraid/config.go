package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration skyraid would run with, as YAML.

Config search order:
  --config <path>            if given
  ~/.skyraid/config.yaml
  ./configs/skyraid.yaml
  built-in defaults

The output is a complete file that can be edited and passed back with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
