package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rulesets",
	Long:  `Shows every registered ruleset.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No rulesets available.")
		return
	}

	fmt.Fprintln(out, "Available rulesets:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridsnake play <id>' to play.")
}

// createGame builds a registered ruleset, listing the known IDs on failure.
func createGame(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("%w %q (available: %s)", registry.ErrUnknownGame, id, strings.Join(registry.IDs(), ", "))
	}
	return registry.Create(id)
}
