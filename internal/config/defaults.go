package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols:     30,
			Rows:     23,
			CellSize: 25,
		},
		Snake: SnakeMovement{
			BaseCadence:   17,
			LengthDivisor: 80,
		},
		Enemies: EnemyConfig{
			Width:          2,
			Height:         1,
			MoveEveryTicks: 150,
			SpawnChance:    0.002,
			MaxCount:       6,
			SpawnMode:      SpawnEdge,
		},
		Timing: TimingConfig{
			StepDelayMicros: 4000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 2.0,
			},
		},
	}
}

// WithoutEnemies returns c with enemy spawning switched off, the classic ruleset.
func (c SnakeConfig) WithoutEnemies() SnakeConfig {
	c.Enemies.MaxCount = 0
	c.Enemies.SpawnChance = 0
	return c
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
