package snake

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func defaultCadence() Cadence {
	return Cadence{Base: 17, LengthDivisor: 80}
}

// tickUntilMove ticks the snake until it steps, failing after limit ticks.
func tickUntilMove(t *testing.T, s *Snake) int {
	t.Helper()
	for i := 1; i <= 1000; i++ {
		if s.Tick() {
			return i
		}
	}
	t.Fatal("snake never moved")
	return 0
}

func positions(rects []core.GridRect) []core.Point {
	out := make([]core.Point, len(rects))
	for i, r := range rects {
		out[i] = r.Pos
	}
	return out
}

func equalPoints(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(defaultCadence())

	want := []core.Point{{X: 1, Y: 20}, {X: 1, Y: 21}, {X: 1, Y: 22}}
	if got := positions(s.OccupiedRects()); !equalPoints(got, want) {
		t.Errorf("initial body = %v, expected %v", got, want)
	}
	if s.Direction() != core.East {
		t.Errorf("initial direction = %s, expected east", s.Direction())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
}

func TestSnakeMovesOnCadence(t *testing.T) {
	s := NewSnake(defaultCadence())

	for i := 1; i < 17; i++ {
		if s.Tick() {
			t.Fatalf("snake moved early at tick %d", i)
		}
	}
	if !s.Tick() {
		t.Fatal("snake should move on tick 17")
	}

	want := []core.Point{{X: 2, Y: 20}, {X: 1, Y: 20}, {X: 1, Y: 21}}
	if got := positions(s.OccupiedRects()); !equalPoints(got, want) {
		t.Errorf("body after step = %v, expected %v", got, want)
	}
}

func TestSnakeGrowthIsDeferred(t *testing.T) {
	s := NewSnake(defaultCadence())
	tickUntilMove(t, s)

	s.Grow()
	s.Grow() // idempotent

	// Ticks before the cadence do not change the length.
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Len() != 3 {
		t.Fatalf("length changed before movement: %d", s.Len())
	}

	tickUntilMove(t, s)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d after growth step, expected 4", s.Len())
	}

	want := []core.Point{{X: 3, Y: 20}, {X: 2, Y: 20}, {X: 1, Y: 20}, {X: 1, Y: 21}}
	if got := positions(s.OccupiedRects()); !equalPoints(got, want) {
		t.Errorf("body after growth = %v, expected %v", got, want)
	}
	if s.growing {
		t.Error("growth flag should clear after the step")
	}

	// Next step without growth keeps length.
	tickUntilMove(t, s)
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4 without pending growth", s.Len())
	}
}

func TestSnakeTurnBuffering(t *testing.T) {
	s := NewSnake(defaultCadence())

	s.RequestTurn(core.West) // reversal, ignored
	if s.nextDir != core.East {
		t.Errorf("reversal should be ignored, pending = %s", s.nextDir)
	}

	s.RequestTurn(core.North)
	s.RequestTurn(core.South) // last request wins
	if s.Direction() != core.East {
		t.Error("direction must not change before the step")
	}

	tickUntilMove(t, s)
	if s.Direction() != core.South {
		t.Errorf("direction after step = %s, expected south", s.Direction())
	}
	if s.Head().Pos != (core.Point{X: 1, Y: 21}) {
		t.Errorf("head = %+v, expected (1,21)", s.Head().Pos)
	}
	// Moving south into the old neck is the loss condition.
	if !s.IsSelfColliding() {
		t.Error("turning into the neck should self-collide")
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	s := NewSnake(defaultCadence())
	s.segments = []core.GridRect{
		core.Cell(5, 5), // Head
		core.Cell(5, 6),
		core.Cell(6, 6),
		core.Cell(6, 5),
		core.Cell(6, 4),
	}
	s.dir, s.nextDir = core.North, core.North

	if s.IsSelfColliding() {
		t.Fatal("spiral should not collide before moving")
	}

	s.RequestTurn(core.East)
	s.step() // head onto (6,5)

	if !s.IsSelfColliding() {
		t.Error("head on a body segment should be self-colliding")
	}
}

func TestSnakeOutOfBounds(t *testing.T) {
	const cols, rows = 30, 23

	tests := []struct {
		name     string
		seg      core.Point
		expected bool
	}{
		{"inside", core.Point{X: 0, Y: 0}, false},
		{"far corner", core.Point{X: cols - 1, Y: rows - 1}, false},
		{"left of grid", core.Point{X: -1, Y: 5}, true},
		{"right of grid", core.Point{X: cols, Y: 5}, true},
		{"above grid", core.Point{X: 3, Y: -1}, true},
		{"below grid", core.Point{X: 3, Y: rows}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(defaultCadence())
			s.segments[2] = core.Cell(tc.seg.X, tc.seg.Y) // tail counts too
			if got := s.IsOutOfBounds(0, 0, cols-1, rows-1); got != tc.expected {
				t.Errorf("IsOutOfBounds() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSnakeCadenceGrowsWithLength(t *testing.T) {
	c := Cadence{Base: 17, LengthDivisor: 80}

	tests := []struct {
		length, expected int
	}{
		{3, 17},
		{79, 17},
		{80, 18},
		{160, 19},
	}
	for _, tc := range tests {
		if got := c.ticksPerStep(tc.length); got != tc.expected {
			t.Errorf("ticksPerStep(%d) = %d, expected %d", tc.length, got, tc.expected)
		}
	}
}

func TestSnakeOccupiedRectsIsCopy(t *testing.T) {
	s := NewSnake(defaultCadence())
	rects := s.OccupiedRects()
	rects[0] = core.Cell(99, 99)

	if s.Head().Pos == (core.Point{X: 99, Y: 99}) {
		t.Error("OccupiedRects must not expose internal storage")
	}
}
