package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

var testBounds = core.NewGridRect(0, 0, 30, 23)

func TestEnemyMoveRejectedWhenBoxedIn(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewEnemy(core.NewGridRect(5, 5, 2, 1), 1, testBounds)

	// One blocker per candidate position.
	occupied := []core.GridRect{
		core.Cell(5, 4), // north
		core.Cell(5, 6), // south
		core.Cell(4, 5), // west
		core.Cell(7, 5), // east
	}

	for i := 0; i < 50; i++ {
		allowed, candidate := e.ComputeMove(occupied, rng)
		if allowed {
			t.Fatalf("move to %+v should be rejected", candidate)
		}
		e.ApplyMove(allowed, candidate)
		if e.Rect().Pos != (core.Point{X: 5, Y: 5}) {
			t.Fatalf("enemy moved to %+v despite rejection", e.Rect().Pos)
		}
	}
}

func TestEnemyStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	e := NewEnemy(core.NewGridRect(0, 0, 2, 1), 1, testBounds)

	for i := 0; i < 2000; i++ {
		allowed, candidate := e.ComputeMove(nil, rng)
		if allowed && !e.Rect().At(candidate).Within(testBounds) {
			t.Fatalf("allowed move leaves the grid: %+v", candidate)
		}
		e.ApplyMove(allowed, candidate)
		if !e.Rect().Within(testBounds) {
			t.Fatalf("enemy left the grid: %+v", e.Rect())
		}
	}
}

func TestEnemyCandidateIsAdjacent(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	e := NewEnemy(core.NewGridRect(10, 10, 2, 1), 1, testBounds)

	for i := 0; i < 100; i++ {
		allowed, candidate := e.ComputeMove(nil, rng)
		if !allowed {
			t.Fatal("free move in the middle of the grid should be allowed")
		}
		dx, dy := candidate.X-10, candidate.Y-10
		if dx*dx+dy*dy != 1 {
			t.Fatalf("candidate %+v is not one cell away", candidate)
		}
	}
}

func TestEnemyApplyMoveCadence(t *testing.T) {
	e := NewEnemy(core.Cell(5, 5), 3, testBounds)

	moves := 0
	pos := core.Point{X: 5, Y: 5}
	for i := 0; i < 9; i++ {
		pos = pos.Add(1, 0)
		if e.ApplyMove(true, pos) {
			moves++
		}
	}
	// Ticks 0, 3 and 6 are cadence ticks.
	if moves != 3 {
		t.Errorf("expected 3 moves in 9 ticks at rate 3, got %d", moves)
	}
	if e.Rect().Pos != (core.Point{X: 12, Y: 5}) {
		t.Errorf("position = %+v, expected the candidate from tick 6", e.Rect().Pos)
	}
}

func TestEnemyOverlaps(t *testing.T) {
	e := NewEnemy(core.NewGridRect(3, 3, 2, 1), 1, testBounds)

	if !e.Overlaps(core.Cell(4, 3)) {
		t.Error("second cell of the footprint should overlap")
	}
	if e.Overlaps(core.Cell(5, 3)) {
		t.Error("cell touching the right edge should not overlap")
	}
}
