// gridsnake is a grid Snake game with wandering enemies, played in the terminal.
//
// Usage:
//
//	gridsnake list              - List available rulesets
//	gridsnake play <game>       - Play a ruleset
//	gridsnake menu              - Pick a ruleset interactively
//	gridsnake serve             - Start SSH server for remote play
//	gridsnake scores <game>     - Show high scores for a ruleset
//	gridsnake sim <game>        - Run a headless simulation
//	gridsnake config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gridsnake/scores.db)
//	--config <path>       - Use a custom snake config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	// Parsed from flagDifficulty
	difficulty config.DifficultyPreset
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid Snake - dodge the enemies, eat the food",
	Long: `Grid Snake is a terminal Snake game on a fixed grid. Rectangular
enemies wander the board; touching one, a wall or yourself ends the run.

Available commands:
  list     - Show all rulesets
  play     - Play a specific ruleset directly
  menu     - Interactive ruleset picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  gridsnake list
  gridsnake play snake
  gridsnake play snake_classic --difficulty hard
  gridsnake serve --ssh :2222
  gridsnake sim snake --ticks 100000 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal UI commands log nowhere by default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setupGlobals validates global flags and hands the config settings to
// the snake rulesets before any game is created.
func setupGlobals(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	difficulty = preset

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(string(preset))
	return nil
}
