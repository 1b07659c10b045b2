// Package config provides YAML-based game configuration loading and
// difficulty management for the snake grid.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the snake grid simulation.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Snake      SnakeMovement    `yaml:"snake"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the fixed cell grid shared by simulation and renderer.
type GridConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"` // pixels per cell for graphical renderers
}

// SnakeMovement defines the snake's movement cadence.
// Ticks per step = length/LengthDivisor + BaseCadence.
type SnakeMovement struct {
	BaseCadence   int `yaml:"base_cadence"`
	LengthDivisor int `yaml:"length_divisor"`
}

// EnemyConfig defines enemy footprint, movement and spawning.
type EnemyConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	MoveEveryTicks int     `yaml:"move_every_ticks"`
	SpawnChance    float64 `yaml:"spawn_chance"` // per-tick probability
	MaxCount       int     `yaml:"max_count"`
	SpawnMode      string  `yaml:"spawn_mode"` // "edge" or "random"
}

// TimingConfig defines the fixed simulation timestep.
type TimingConfig struct {
	StepDelayMicros int `yaml:"step_delay_us"`
}

// Spawn modes for enemies.
const (
	SpawnEdge   = "edge"
	SpawnRandom = "random"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn chance multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Minimum grid size that fits the starting snake at rows 20-22.
const (
	minCols = 4
	minRows = 23
)

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid snake config")

// MaxEnemies returns the largest enemy cap whose footprints cover at most
// half the grid.
func (c SnakeConfig) MaxEnemies() int {
	area := c.Enemies.Width * c.Enemies.Height
	if area <= 0 {
		return 0
	}
	return c.Grid.Cols * c.Grid.Rows / (2 * area)
}

// Validate checks that the configuration describes a playable grid.
// Enemies must always leave free cells so placement retries terminate.
func (c SnakeConfig) Validate() error {
	if c.Grid.Cols < minCols || c.Grid.Rows < minRows {
		return fmt.Errorf("%w: grid %dx%d smaller than %dx%d", ErrInvalidConfig, c.Grid.Cols, c.Grid.Rows, minCols, minRows)
	}
	if c.Snake.BaseCadence <= 0 || c.Snake.LengthDivisor <= 0 {
		return fmt.Errorf("%w: snake cadence must be positive", ErrInvalidConfig)
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		return fmt.Errorf("%w: enemy footprint must be positive", ErrInvalidConfig)
	}
	if c.Enemies.Width > c.Grid.Cols || c.Enemies.Height > c.Grid.Rows {
		return fmt.Errorf("%w: enemy footprint larger than grid", ErrInvalidConfig)
	}
	if c.Enemies.MoveEveryTicks <= 0 {
		return fmt.Errorf("%w: enemy move_every_ticks must be positive", ErrInvalidConfig)
	}
	if c.Enemies.SpawnChance < 0 || c.Enemies.SpawnChance > 1 {
		return fmt.Errorf("%w: spawn_chance %.4f outside [0,1]", ErrInvalidConfig, c.Enemies.SpawnChance)
	}
	if c.Enemies.MaxCount < 0 {
		return fmt.Errorf("%w: negative enemy max_count", ErrInvalidConfig)
	}
	if c.Enemies.MaxCount > c.MaxEnemies() {
		return fmt.Errorf("%w: %d enemies would cover more than half the grid", ErrInvalidConfig, c.Enemies.MaxCount)
	}
	switch c.Enemies.SpawnMode {
	case SpawnEdge, SpawnRandom:
	default:
		return fmt.Errorf("%w: unknown spawn_mode %q", ErrInvalidConfig, c.Enemies.SpawnMode)
	}
	if c.Timing.StepDelayMicros <= 0 {
		return fmt.Errorf("%w: step_delay_us must be positive", ErrInvalidConfig)
	}
	return nil
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string keeps the
// configured difficulty unchanged.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}
