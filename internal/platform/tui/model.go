package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// seededHistory is how many stored scores prime a game's score history.
const seededHistory = 10

// RunStore persists finished runs and provides stored scores.
// *storage.Store implements it.
type RunStore interface {
	SaveRun(r storage.Run) (int64, error)
	DistinctScores(gameID string, limit int) ([]int, error)
}

// Optional game capabilities.
type (
	scoreSeeder interface {
		SeedScores(scores []int)
	}
	resizer interface {
		Resize(width, height int)
	}
	runStatter interface {
		LastRunStats() (ticks, enemies int)
	}
)

// Model is the Bubble Tea model that drives one game.
// Frames arrive at the configured FPS; the time between them is turned
// into fixed simulation steps by an accumulator.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunStore
	logger     *log.Logger
	config     core.RuntimeConfig
	acc        *core.Accumulator
	loop       uint64
	lastFrame  time.Time
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	embedded   bool // Back returns to a parent menu instead of quitting
	quitting   bool
	backToMenu bool
	runsSaved  int
}

// helpLines is the terminal height reserved for the help footer.
const helpLines = 1

// playfield returns cfg with the help footer taken off the height. Games
// only ever see this area.
func playfield(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-helpLines, 1)
	return cfg
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(playfield(cfg))
	if seeder, ok := game.(scoreSeeder); ok && store != nil {
		scores, err := store.DistinctScores(game.ID(), seededHistory)
		if err != nil {
			logger.Warn("could not load score history", "game", game.ID(), "error", err)
		} else {
			seeder.SeedScores(scores)
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfield(cfg).ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		acc:        core.NewAccumulator(game.StepInterval()),
		loop:       loopSeq.Add(1),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleFrame(msg.Time)
	}

	return m, nil
}

// handleKey buffers game actions until the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	// Steering keys replace each other so the last one pressed wins.
	if isSteering(action) {
		for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
			m.inputFrame.Unset(a)
		}
	}
	m.inputFrame.Set(action)
	return m, nil
}

func isSteering(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// handleResize keeps the run going; games that cannot resize in place are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	area := playfield(m.config)
	m.screen.Resize(area.ScreenW, area.ScreenH)
	if r, ok := m.game.(resizer); ok {
		r.Resize(area.ScreenW, area.ScreenH)
	} else {
		m.game.Reset(area)
		m.acc.Reset()
	}

	return m, nil
}

// handleFrame runs every simulation step that came due since the last frame.
// Buffered input is applied to the first step only.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	steps := m.acc.Advance(elapsed)
	for range steps {
		result := m.game.Step(m.inputFrame.Clone())
		m.gameState = result.State
		m.inputFrame.Clear()

		if m.gameState.GameOver {
			m.saveRun()
		}
	}

	if m.backToMenu {
		return m, nil
	}
	return m, frameCmd(m.config.TickRate, m.loop)
}

// saveRun records the run that just ended. Saving is best effort.
func (m *Model) saveRun() {
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if rs, ok := m.game.(runStatter); ok {
		run.Ticks, run.Enemies = rs.LastRunStats()
	}

	m.logger.Info("run over", "game", run.GameID, "length", run.Score, "ticks", run.Ticks, "enemies", run.Enemies)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.runsSaved++
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".gridsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the game screen with a help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last simulation step.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunsSaved returns how many finished runs were stored.
func (m Model) RunsSaved() int {
	return m.runsSaved
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.logger.Info("game closed", "game", game.ID(), "runs_saved", m.RunsSaved())
	}
	return err
}
