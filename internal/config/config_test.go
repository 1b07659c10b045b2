package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("DefaultSnakeConfig() invalid: %v", err)
	}
	if err := DefaultSnakeConfig().WithoutEnemies().Validate(); err != nil {
		t.Fatalf("WithoutEnemies() invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"grid too short for start position", func(c *SnakeConfig) { c.Grid.Rows = 10 }},
		{"zero base cadence", func(c *SnakeConfig) { c.Snake.BaseCadence = 0 }},
		{"zero length divisor", func(c *SnakeConfig) { c.Snake.LengthDivisor = 0 }},
		{"zero enemy width", func(c *SnakeConfig) { c.Enemies.Width = 0 }},
		{"enemy wider than grid", func(c *SnakeConfig) { c.Enemies.Width = 31 }},
		{"zero enemy rate", func(c *SnakeConfig) { c.Enemies.MoveEveryTicks = 0 }},
		{"spawn chance above one", func(c *SnakeConfig) { c.Enemies.SpawnChance = 1.5 }},
		{"enemy cap fills grid", func(c *SnakeConfig) { c.Enemies.MaxCount = 300 }},
		{"unknown spawn mode", func(c *SnakeConfig) { c.Enemies.SpawnMode = "sky" }},
		{"zero step delay", func(c *SnakeConfig) { c.Timing.StepDelayMicros = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("grid:\n  cols: 40\nenemies:\n  max_count: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Cols != 40 {
		t.Errorf("Grid.Cols = %d, expected 40", cfg.Grid.Cols)
	}
	if cfg.Enemies.MaxCount != 2 {
		t.Errorf("Enemies.MaxCount = %d, expected 2", cfg.Enemies.MaxCount)
	}
	// Unset fields keep their defaults
	if cfg.Grid.Rows != 23 || cfg.Snake.BaseCadence != 17 {
		t.Errorf("partial config should keep defaults, got %+v", cfg)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("LoadSnake() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSnake() should reject invalid values, got %v", err)
	}
}

func TestHardPresetRespectsEnemyLimit(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Cols = 4 // 92 cells, room for 23 two-cell enemies
	if got := cfg.MaxEnemies(); got != 23 {
		t.Fatalf("MaxEnemies() = %d, expected 23", got)
	}

	for _, start := range []int{21, 23} {
		c := cfg
		c.Enemies.MaxCount = start
		if err := c.Validate(); err != nil {
			t.Fatalf("cap %d should be valid: %v", start, err)
		}
		ApplySnakePreset(&c, DifficultyHard)
		if c.Enemies.MaxCount != 23 {
			t.Errorf("hard preset from %d: cap = %d, expected 23", start, c.Enemies.MaxCount)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("hard preset from %d produced invalid config: %v", start, err)
		}
	}
}

func TestApplySnakePreset(t *testing.T) {
	base := DefaultSnakeConfig()

	fixed := base
	ApplySnakePreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := base
	ApplySnakePreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %.2f, expected 0.7", hard.Difficulty.InitialLevel)
	}
	if hard.Enemies.MaxCount <= base.Enemies.MaxCount {
		t.Error("hard preset should raise the enemy cap")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	easy := base
	ApplySnakePreset(&easy, DifficultyEasy)
	if easy.Enemies.MoveEveryTicks <= base.Enemies.MoveEveryTicks {
		t.Error("easy preset should slow enemies down")
	}

	classic := DefaultSnakeConfig().WithoutEnemies()
	ApplySnakePreset(&classic, DifficultyHard)
	if classic.Enemies.MaxCount != 0 {
		t.Error("hard preset must not add enemies to the classic ruleset")
	}

	if base.Difficulty.Enabled {
		t.Error("defaults should keep the spawn chance fixed")
	}
	normal := base
	ApplySnakePreset(&normal, DifficultyNormal)
	if !normal.Difficulty.Enabled {
		t.Error("normal preset should enable progression")
	}

	untouched := base
	ApplySnakePreset(&untouched, "")
	if untouched != base {
		t.Error("empty preset should leave the config unchanged")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpawnMultiplier: 1.0},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %.3f, expected %.3f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultySpawnChance(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpawnMultiplier: 2.0},
	})

	if got := dm.SpawnChance(0.01, 0, 0); got != 0.01 {
		t.Errorf("SpawnChance at start = %.4f, expected 0.01", got)
	}
	if got := dm.SpawnChance(0.01, 0, 100); got < 0.0299 || got > 0.0301 {
		t.Errorf("SpawnChance at max = %.4f, expected 0.03", got)
	}
	if got := dm.SpawnChance(0.9, 0, 100); got != 1.0 {
		t.Errorf("SpawnChance should clamp to 1, got %.4f", got)
	}

	disabled := NewDifficultyManager(DifficultyConfig{Enabled: false})
	if disabled.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := disabled.SpawnChance(0.01, 1000, 1000); got != 0.01 {
		t.Errorf("disabled SpawnChance = %.4f, expected base", got)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if p, err := ParsePreset(name); err != nil || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}
