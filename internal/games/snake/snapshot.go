package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateLost        GameStateType = "lost"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64         `yaml:"tick"`
	Mode        string         `yaml:"mode"`
	Length      int            `yaml:"length"`
	HeadX       int            `yaml:"head_x"`
	HeadY       int            `yaml:"head_y"`
	Dir         core.Direction `yaml:"dir"`
	FoodX       int            `yaml:"food_x"`
	FoodY       int            `yaml:"food_y"`
	Enemies     int            `yaml:"enemies"`
	Best        int            `yaml:"best"`
	Scores      []int          `yaml:"scores,flow"`
	Cadence     int            `yaml:"cadence"`
	SpawnChance float64        `yaml:"spawn_chance"`
	State       GameStateType  `yaml:"state"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.lost:
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	s := g.world.Snake()
	head := s.Head()
	food := g.world.Food()

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Length:      s.Len(),
		HeadX:       head.Pos.X,
		HeadY:       head.Pos.Y,
		Dir:         s.Direction(),
		FoodX:       food.Pos.X,
		FoodY:       food.Pos.Y,
		Enemies:     len(g.world.enemies),
		Best:        g.world.BestScore(),
		Scores:      g.world.Scores(),
		Cadence:     s.Cadence(),
		SpawnChance: g.world.SpawnChance(),
		State:       state,
	}
}
