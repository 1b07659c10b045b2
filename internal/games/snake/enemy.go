package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Enemy is a rectangle that wanders the grid at random.
//
// Movement is split in two phases so every enemy decides against the same
// occupancy snapshot: ComputeMove proposes a step, ApplyMove commits it on
// cadence ticks. The world computes and applies one enemy at a time, but
// the snapshot it passes is built before any enemy moves.
type Enemy struct {
	rect   core.GridRect
	rate   int // ticks per step
	ticks  int
	bounds core.GridRect
}

// NewEnemy creates an enemy occupying rect, stepping every rate ticks and
// confined to bounds.
func NewEnemy(rect core.GridRect, rate int, bounds core.GridRect) *Enemy {
	return &Enemy{
		rect:   rect,
		rate:   max(rate, 1),
		bounds: bounds,
	}
}

// ComputeMove picks a random direction and checks the resulting position.
// The move is rejected if it leaves the grid or overlaps any rect in
// occupied. Callers must leave the enemy's own rect out of occupied.
func (e *Enemy) ComputeMove(occupied []core.GridRect, rng *rand.Rand) (allowed bool, candidate core.Point) {
	dx, dy := core.RandomDirection(rng).Velocity()
	next := e.rect.Translate(dx, dy)

	if !next.Within(e.bounds) {
		return false, next.Pos
	}
	for _, r := range occupied {
		if next.Overlapping(r) {
			return false, next.Pos
		}
	}
	return true, next.Pos
}

// ApplyMove moves to candidate on a cadence tick when the move was allowed.
// The tick counter always advances.
func (e *Enemy) ApplyMove(allowed bool, candidate core.Point) bool {
	moved := false
	if e.ticks%e.rate == 0 && allowed {
		e.rect = e.rect.At(candidate)
		moved = true
	}
	e.ticks++
	return moved
}

// Overlaps returns true if the enemy shares a cell with r.
func (e *Enemy) Overlaps(r core.GridRect) bool {
	return e.rect.Overlapping(r)
}

// Rect returns the enemy's footprint.
func (e *Enemy) Rect() core.GridRect {
	return e.rect
}
