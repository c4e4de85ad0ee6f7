package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the resolved configuration of one variant: the config file
search, that variant's overrides and the difficulty preset are already
applied, and the variants section is dropped.

This is a per-variant view for inspection. Saving it as a config file
would make this variant's speed, scaled by the preset, the base speed of
every variant. Use --defaults to print the full default config, variants
included, as a starting point for ~/.snake/configs/snake.yaml.

Examples:
  snake config
  snake config --defaults > ~/.snake/configs/snake.yaml
  snake config snake_turbo --difficulty hard
  snake config --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

var flagConfigDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the full default config instead of one resolved variant")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	return writeConfig(cmd.OutOrStdout(), gameID, flagConfigDefaults)
}

// writeConfig prints either the full default config or the resolved
// config of one variant.
func writeConfig(w io.Writer, gameID string, defaults bool) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	cfg, err := effectiveConfig(gameID)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// effectiveConfig resolves the config of a variant with the global flags.
func effectiveConfig(gameID string) (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	cfg, err := config.Resolve(flagConfig, gameID, preset)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagNamespace != "" {
		cfg.Storage.Namespace = flagNamespace
	}
	return cfg, nil
}
