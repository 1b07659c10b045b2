package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective snake configuration",
	Long: `Print the configuration a game would start with, after the config file
search and the --difficulty preset are applied. The file is validated
first; an invalid file is reported instead of printed.

Search order: --config, ~/.gridsnake/configs/snake.yaml,
./configs/snake.yaml, built-in defaults.

Examples:
  gridsnake config
  gridsnake config --difficulty hard
  gridsnake config --defaults > ~/.gridsnake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, difficulty)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
