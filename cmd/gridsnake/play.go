package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a ruleset",
	Long: `Start playing the specified ruleset.

Controls:
  Arrows/WASD - Steer
  P/Space     - Pause
  R           - Restart
  Esc/B       - Leave
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - Fewer, slower enemies; spawn rate ramps up from zero
  normal - Spawn rate starts at 30% of its ramp
  hard   - More, faster enemies; spawn rate starts at 70% of its ramp
  fixed  - No progression, config values as written

Examples:
  gridsnake play snake
  gridsnake play snake --difficulty hard
  gridsnake play snake_classic --seed 42
  gridsnake play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := createGame(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "gridsnake")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var runStore tui.RunStore
	if store != nil {
		runStore = store
	}

	if err := tui.Run(game, runStore, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
