package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a ruleset interactively",
	Long: `Start with a ruleset picker menu.

Use arrow keys or j/k to choose a ruleset and left/right to change the
difficulty. Tab opens the high scores. Leaving a game returns to the menu.

Examples:
  gridsnake menu
  gridsnake menu --difficulty hard
  gridsnake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "gridsnake")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, logger, runtimeConfig(), difficulty); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
