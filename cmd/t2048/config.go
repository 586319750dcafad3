package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swap2048/internal/config"
)

var flagConfigPreset string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file, preset,
T2048_* environment variables and flags, as YAML.

Redirect the output to ~/.t2048/config.yaml to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(flagConfigPreset)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().StringVar(&flagConfigPreset, "preset", "", "Apply a rule preset first")
}
