package snake

import (
	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// maxSpawnAttempts bounds the enemy placement search. A crowded grid skips
// the spawn for this tick instead of looping.
const maxSpawnAttempts = 64

// occupiedBy reports whether r overlaps the snake or any enemy.
func (w *World) occupiedBy(r core.GridRect) bool {
	if w.snake.Occupies(r) {
		return true
	}
	for _, e := range w.enemies {
		if e.Overlaps(r) {
			return true
		}
	}
	return false
}

// placeFood moves the food to a uniformly chosen free cell.
// Returns false only when no free cell exists.
func (w *World) placeFood() bool {
	var free []core.Point
	for y := 0; y < w.cfg.Grid.Rows; y++ {
		for x := 0; x < w.cfg.Grid.Cols; x++ {
			if !w.occupiedBy(core.Cell(x, y)) {
				free = append(free, core.Point{X: x, Y: y})
			}
		}
	}

	if len(free) == 0 {
		// Should not happen: the enemy cap leaves room
		w.food = core.Cell(-1, -1)
		return false
	}

	p := free[w.rng.Intn(len(free))]
	w.food = core.Cell(p.X, p.Y)
	return true
}

// placeEnemy searches for a spawn rect that overlaps nothing.
func (w *World) placeEnemy() (core.GridRect, bool) {
	for range maxSpawnAttempts {
		var r core.GridRect
		if w.cfg.Enemies.SpawnMode == config.SpawnRandom {
			r = w.randomEnemyRect()
		} else {
			r = w.edgeEnemyRect()
		}
		if w.occupiedBy(r) || r.Overlapping(w.food) {
			continue
		}
		return r, true
	}
	return core.GridRect{}, false
}

// edgeEnemyRect picks a random side of the grid and a random position along it.
func (w *World) edgeEnemyRect() core.GridRect {
	ew, eh := w.cfg.Enemies.Width, w.cfg.Enemies.Height
	maxX := w.cfg.Grid.Cols - ew
	maxY := w.cfg.Grid.Rows - eh

	var x, y int
	switch core.RandomDirection(w.rng) {
	case core.North:
		x, y = w.rng.Intn(maxX+1), 0
	case core.South:
		x, y = w.rng.Intn(maxX+1), maxY
	case core.West:
		x, y = 0, w.rng.Intn(maxY+1)
	default:
		x, y = maxX, w.rng.Intn(maxY+1)
	}
	return core.NewGridRect(x, y, ew, eh)
}

// randomEnemyRect picks any position where the footprint fits the grid.
func (w *World) randomEnemyRect() core.GridRect {
	ew, eh := w.cfg.Enemies.Width, w.cfg.Enemies.Height
	x := w.rng.Intn(w.cfg.Grid.Cols - ew + 1)
	y := w.rng.Intn(w.cfg.Grid.Rows - eh + 1)
	return core.NewGridRect(x, y, ew, eh)
}
