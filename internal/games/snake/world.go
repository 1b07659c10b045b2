package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// TickResult reports what happened during one World tick.
type TickResult struct {
	Moved   bool // Snake stepped a cell
	Ate     bool // Snake head reached the food
	Lost    bool // Run ended and the world was reset
	Score   int  // Snake length at loss, set when Lost
	Spawned bool // A new enemy appeared

	RunTicks int // Ticks the lost run lasted, set when Lost
	Enemies  int // Enemies on the grid at loss, set when Lost
}

// World owns the snake, enemies and food on a fixed grid and advances them
// one tick at a time. It is not safe for concurrent use.
type World struct {
	cfg        config.SnakeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	snake   *Snake
	enemies []*Enemy
	food    core.GridRect
	bounds  core.GridRect

	scores      ScoreHistory
	spawnChance float64
	ticks       int
	runStart    int // Tick the current run began
}

// NewWorld creates a world with a fresh snake, no enemies and placed food.
// cfg must be valid; all randomness comes from rng.
func NewWorld(cfg config.SnakeConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:         cfg,
		rng:         rng,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		bounds:      core.NewGridRect(0, 0, cfg.Grid.Cols, cfg.Grid.Rows),
		spawnChance: cfg.Enemies.SpawnChance,
	}
	w.snake = w.newSnake()
	w.placeFood()
	return w
}

func (w *World) newSnake() *Snake {
	return NewSnake(Cadence{
		Base:          w.cfg.Snake.BaseCadence,
		LengthDivisor: w.cfg.Snake.LengthDivisor,
	})
}

// RequestTurn forwards buffered player input to the snake.
func (w *World) RequestTurn(d core.Direction) {
	w.snake.RequestTurn(d)
}

// Tick advances the simulation by one step.
func (w *World) Tick() TickResult {
	var res TickResult
	w.ticks++

	res.Moved = w.snake.Tick()

	// Every enemy decides against the same pre-move occupancy.
	snapshot := w.occupancy()
	foodTaken := false
	for i, e := range w.enemies {
		allowed, candidate := e.ComputeMove(withoutIndex(snapshot, i), w.rng)
		e.ApplyMove(allowed, candidate)
		if e.Overlaps(w.food) {
			foodTaken = true
		}
	}

	if w.lost() {
		res.Lost = true
		res.Score = w.snake.Len()
		res.RunTicks = w.ticks - w.runStart
		res.Enemies = len(w.enemies)
		w.runStart = w.ticks
		w.scores.Record(res.Score)
		w.snake = w.newSnake()
		w.enemies = nil
		w.placeFood()
	} else if w.snake.Head().Overlapping(w.food) {
		res.Ate = true
		w.snake.Grow()
		w.placeFood()
	} else if foodTaken {
		w.placeFood()
	}

	// The spawn roll runs on every tick, including the one that reset the run.
	res.Spawned = w.maybeSpawnEnemy()
	return res
}

// occupancy returns enemy rects (in enemy order) followed by snake segments.
func (w *World) occupancy() []core.GridRect {
	rects := make([]core.GridRect, 0, len(w.enemies)+w.snake.Len())
	for _, e := range w.enemies {
		rects = append(rects, e.Rect())
	}
	return append(rects, w.snake.OccupiedRects()...)
}

// withoutIndex returns a copy of rects with element i removed.
func withoutIndex(rects []core.GridRect, i int) []core.GridRect {
	out := make([]core.GridRect, 0, len(rects)-1)
	out = append(out, rects[:i]...)
	return append(out, rects[i+1:]...)
}

// lost checks the loss conditions after everything has moved.
func (w *World) lost() bool {
	if w.snake.IsSelfColliding() {
		return true
	}
	if w.snake.IsOutOfBounds(0, 0, w.cfg.Grid.Cols-1, w.cfg.Grid.Rows-1) {
		return true
	}
	head := w.snake.Head()
	for _, e := range w.enemies {
		if e.Overlaps(head) {
			return true
		}
	}
	return false
}

// maybeSpawnEnemy adds an enemy with the current spawn chance while under the cap.
func (w *World) maybeSpawnEnemy() bool {
	w.spawnChance = w.difficulty.SpawnChance(w.cfg.Enemies.SpawnChance, w.snake.Len(), w.ticks)
	if len(w.enemies) >= w.cfg.Enemies.MaxCount {
		return false
	}
	if w.rng.Float64() >= w.spawnChance {
		return false
	}
	rect, ok := w.placeEnemy()
	if !ok {
		return false
	}
	w.enemies = append(w.enemies, NewEnemy(rect, w.cfg.Enemies.MoveEveryTicks, w.bounds))
	return true
}

// Snake returns the current snake. Callers must not mutate it.
func (w *World) Snake() *Snake {
	return w.snake
}

// Enemies returns the footprints of all enemies.
func (w *World) Enemies() []core.GridRect {
	rects := make([]core.GridRect, len(w.enemies))
	for i, e := range w.enemies {
		rects[i] = e.Rect()
	}
	return rects
}

// Food returns the food cell. It is at (-1, -1) only if the grid is full.
func (w *World) Food() core.GridRect {
	return w.food
}

// Scores returns the score history, best first.
func (w *World) Scores() []int {
	return w.scores.Values()
}

// BestScore returns the highest recorded score.
func (w *World) BestScore() int {
	return w.scores.Best()
}

// SeedScores records previously persisted scores into the history.
func (w *World) SeedScores(scores []int) {
	for _, s := range scores {
		w.scores.Record(s)
	}
}

// Cols returns the grid width in cells.
func (w *World) Cols() int {
	return w.cfg.Grid.Cols
}

// Rows returns the grid height in cells.
func (w *World) Rows() int {
	return w.cfg.Grid.Rows
}

// SpawnChance returns the enemy spawn probability used on the last tick.
func (w *World) SpawnChance() float64 {
	return w.spawnChance
}

// Ticks returns the number of ticks since the world was created.
func (w *World) Ticks() int {
	return w.ticks
}
