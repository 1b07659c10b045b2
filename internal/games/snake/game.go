package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// lossBannerTicks is how long the HUD shows the last loss.
const lossBannerTicks = 500

// Mode selects the ruleset.
type Mode string

const (
	ModeEnemies Mode = "enemies"
	ModeClassic Mode = "classic"
)

// Package-level variables for config/difficulty, set by the CLI before creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts a World to the platform's game interface.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // Overrides the package preset when set
	cfg    config.SnakeConfig
	cfgErr error
	rng    *rand.Rand
	world  *World
	tick   uint64

	paused   bool
	lost     bool       // Set on the tick a run was lost
	lastLoss TickResult // Result of the tick that lost the most recent run
	tooSmall bool
	banner   int // Ticks left to show the loss banner

	screenW int
	screenH int
}

// New creates a Snake game with wandering enemies.
func New() *Game {
	return &Game{mode: ModeEnemies}
}

// NewClassic creates a Snake game without enemies.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "snake_classic"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Reset loads configuration and starts a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.world = NewWorld(g.cfg, g.rng)
	g.tick = 0
	g.paused = false
	g.lost = false
	g.lastLoss = TickResult{}
	g.banner = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without restarting the run. The game
// pauses while the grid does not fit.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < g.cfg.Grid.Cols+2 || height < g.cfg.Grid.Rows+3
}

// loadConfig resolves the config for the current mode. Load errors fall
// back to defaults and are kept for ConfigError.
func (g *Game) loadConfig() {
	cfg, err := config.LoadSnake(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if g.mode == ModeClassic {
		cfg = cfg.WithoutEnemies()
	}
	preset := g.preset
	if preset == "" {
		preset = config.DifficultyPreset(difficultyPreset)
	}
	config.ApplySnakePreset(&cfg, preset)
	g.cfg = cfg
}

// SetDifficulty selects the difficulty preset for this game. It takes
// effect on the next Reset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Config returns the active configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// World exposes the simulation for read-only inspection.
func (g *Game) World() *World {
	return g.world
}

// SeedScores loads previously persisted scores into the score history.
func (g *Game) SeedScores(scores []int) {
	g.world.SeedScores(scores)
}

// StepInterval returns the wall-clock duration of one simulation tick.
func (g *Game) StepInterval() time.Duration {
	return time.Duration(g.cfg.Timing.StepDelayMicros) * time.Microsecond
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.lost = false

	if input.Has(core.ActionRestart) {
		history := g.world.Scores()
		g.world = NewWorld(g.cfg, g.rng)
		g.world.SeedScores(history)
		g.paused = false
		g.banner = 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := input.Direction(); ok {
		g.world.RequestTurn(dir)
	}

	if g.banner > 0 {
		g.banner--
	}

	res := g.world.Tick()
	if res.Lost {
		g.lost = true
		g.lastLoss = res
		g.banner = lossBannerTicks
	}

	return core.StepResult{State: g.State()}
}

// LastRunStats reports how long the most recently lost run lasted and how
// many enemies were on the grid when it ended.
func (g *Game) LastRunStats() (ticks, enemies int) {
	return g.lastLoss.RunTicks, g.lastLoss.Enemies
}

// State returns the current game state. GameOver is true only on the tick
// a run was lost; the world has already restarted by then.
func (g *Game) State() core.GameState {
	score := g.world.Snake().Len()
	if g.lost {
		score = g.lastLoss.Score
	}
	return core.GameState{
		Score:    score,
		Best:     g.world.BestScore(),
		GameOver: g.lost,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", g.cfg.Grid.Cols+2, g.cfg.Grid.Rows+3))
		return
	}

	g.renderHUD(dst)

	offX := (dst.Width() - g.world.Cols()) / 2
	offY := 2
	dst.DrawBox(core.NewGridRect(offX, offY, g.world.Cols(), g.world.Rows()), core.ColorGray)

	food := g.world.Food()
	if food.Pos.X >= 0 {
		dst.SetColored(offX+food.Pos.X, offY+food.Pos.Y, '*', core.ColorYellow)
	}

	for _, r := range g.world.Enemies() {
		for y := r.Pos.Y; y <= r.Bottom(); y++ {
			for x := r.Pos.X; x <= r.Right(); x++ {
				dst.SetColored(offX+x, offY+y, 'X', core.ColorRed)
			}
		}
	}

	for i, seg := range g.world.Snake().OccupiedRects() {
		ch, color := 'o', core.ColorGreen
		if i == 0 {
			ch, color = 'O', core.ColorBrightGreen
		}
		dst.SetColored(offX+seg.Pos.X, offY+seg.Pos.Y, ch, color)
	}

	if g.paused {
		dst.DrawTextCentered(offY+g.world.Rows()/2, " Paused - press P ")
	}
}

// renderHUD draws the top status line, or the loss banner after a run ends.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.banner > 0 {
		msg := fmt.Sprintf(" Run over at length %d  Best: %d", g.lastLoss.Score, g.world.BestScore())
		dst.DrawTextColored(0, 0, msg, core.ColorBrightRed)
		return
	}
	hud := fmt.Sprintf(" %s  Length: %d  Best: %d", g.Title(), g.world.Snake().Len(), g.world.BestScore())
	if g.mode == ModeEnemies {
		hud += fmt.Sprintf("  Enemies: %d", len(g.world.enemies))
	}
	dst.DrawText(0, 0, hud)
}
