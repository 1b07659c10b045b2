package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	// Flag values persist between Execute calls in one process.
	t.Cleanup(func() {
		flagSimTicks, flagSimTurnEvery, flagSimSave = 50000, 60, false
		flagConfigDefaults = false
		flagSeed, flagDifficulty, flagLogLevel = 0, "", "info"
		flagDBPath = "~/.gridsnake/scores.db"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("gridsnake %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	for _, want := range []string{"snake", "snake_classic", "Snake (Classic)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestSimDeterministic(t *testing.T) {
	args := []string{"sim", "snake", "--ticks", "20000", "--seed", "7", "--log-level", "error"}
	first := execute(t, args...)
	second := execute(t, args...)

	if first != second {
		t.Fatalf("same seed produced different snapshots:\n%s\n---\n%s", first, second)
	}

	var snap struct {
		Tick  uint64 `yaml:"tick"`
		Mode  string `yaml:"mode"`
		Dir   string `yaml:"dir"`
		State string `yaml:"state"`
	}
	if err := yaml.Unmarshal([]byte(first), &snap); err != nil {
		t.Fatalf("sim output is not YAML: %v\n%s", err, first)
	}
	if snap.Tick != 20000 {
		t.Errorf("tick = %d, want 20000", snap.Tick)
	}
	if snap.Mode != "enemies" {
		t.Errorf("mode = %q, want enemies", snap.Mode)
	}
	switch snap.Dir {
	case "north", "east", "south", "west":
	default:
		t.Errorf("dir = %q, want a direction name", snap.Dir)
	}
}

func TestSimUnknownGame(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"sim", "tetris"})
	err := rootCmd.Execute()
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
	if !strings.Contains(err.Error(), "snake_classic") {
		t.Errorf("error should list the known rulesets: %v", err)
	}
}

func TestScoresSummary(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	if out := execute(t, "scores", "--db", db); !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("empty database summary:\n%s", out)
	}

	// Heading straight east hits the wall every few hundred ticks.
	execute(t, "sim", "snake_classic", "--ticks", "2000", "--turn-every", "0", "--seed", "3",
		"--save", "--db", db, "--log-level", "error")

	out := execute(t, "scores", "--db", db)
	if !strings.Contains(out, "snake_classic") || strings.Contains(out, "No runs") {
		t.Errorf("summary should list the simulated ruleset:\n%s", out)
	}
}

func TestConfigCommandAppliesPreset(t *testing.T) {
	out := execute(t, "config", "--difficulty", "fixed")

	var cfg config.SnakeConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not YAML: %v\n%s", err, out)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty progression")
	}
	if cfg.Grid.Cols <= 0 || cfg.Grid.Rows <= 0 {
		t.Errorf("grid = %dx%d, want positive", cfg.Grid.Cols, cfg.Grid.Rows)
	}
}

func TestConfigDefaults(t *testing.T) {
	out := execute(t, "config", "--defaults")
	if out != string(config.DefaultYAML()) {
		t.Error("--defaults should print the embedded default config")
	}
}

func TestBadDifficulty(t *testing.T) {
	t.Cleanup(func() { flagDifficulty = "" })
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"list", "--difficulty", "brutal"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}
