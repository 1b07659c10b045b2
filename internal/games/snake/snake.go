package snake

import (
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Cadence controls how many ticks pass between snake steps.
// Ticks per step = length/LengthDivisor + Base.
type Cadence struct {
	Base          int
	LengthDivisor int
}

// ticksPerStep returns the cadence for a body of the given length.
func (c Cadence) ticksPerStep(length int) int {
	div := max(c.LengthDivisor, 1)
	return max(length/div+c.Base, 1)
}

// Starting body, head first.
var startBody = []core.Point{{X: 1, Y: 20}, {X: 1, Y: 21}, {X: 1, Y: 22}}

// Snake is the player-controlled body on the grid.
// Segments are 1x1 rects stored head first.
type Snake struct {
	segments []core.GridRect
	dir      core.Direction
	nextDir  core.Direction // Buffered direction, committed on the next step
	growing  bool           // If true, keep the tail on the next step
	ticks    int
	cadence  Cadence
}

// NewSnake creates a fresh three-segment snake facing east.
// Replacing a Snake with a new one is the only way to reset it.
func NewSnake(cadence Cadence) *Snake {
	segments := make([]core.GridRect, len(startBody))
	for i, p := range startBody {
		segments[i] = core.Cell(p.X, p.Y)
	}
	return &Snake{
		segments: segments,
		dir:      core.East,
		nextDir:  core.East,
		cadence:  cadence,
	}
}

// RequestTurn buffers a direction change. Reversals are ignored; the last
// request before the next step wins.
func (s *Snake) RequestTurn(d core.Direction) {
	s.nextDir = core.ResolveTurn(s.dir, d)
}

// Grow keeps the tail on the next step. Calling it again before that step
// has no further effect.
func (s *Snake) Grow() {
	s.growing = true
}

// Tick advances the snake's counter and moves it one cell when the cadence
// is reached. Returns true if the snake moved.
func (s *Snake) Tick() bool {
	s.ticks++
	if s.ticks%s.Cadence() != 0 {
		return false
	}
	s.step()
	return true
}

// step commits the buffered direction and shifts the body one cell.
func (s *Snake) step() {
	s.dir = s.nextDir
	dx, dy := s.dir.Velocity()
	head := s.segments[0].Translate(dx, dy)

	s.segments = append(s.segments, core.GridRect{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = head

	if s.growing {
		s.growing = false
		return
	}
	s.segments = s.segments[:len(s.segments)-1]
}

// IsSelfColliding returns true if the head shares a cell with another segment.
func (s *Snake) IsSelfColliding() bool {
	head := s.segments[0].Pos
	for _, seg := range s.segments[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

// IsOutOfBounds returns true if any segment lies outside the inclusive
// rectangle [left, right] x [top, bottom].
func (s *Snake) IsOutOfBounds(left, top, right, bottom int) bool {
	area := core.NewGridRect(left, top, right-left+1, bottom-top+1)
	for _, seg := range s.segments {
		if !area.Contains(seg.Pos) {
			return true
		}
	}
	return false
}

// Occupies returns true if any segment overlaps r.
func (s *Snake) Occupies(r core.GridRect) bool {
	for _, seg := range s.segments {
		if seg.Overlapping(r) {
			return true
		}
	}
	return false
}

// OccupiedRects returns a copy of the body, head to tail.
func (s *Snake) OccupiedRects() []core.GridRect {
	out := make([]core.GridRect, len(s.segments))
	copy(out, s.segments)
	return out
}

// Head returns the head segment.
func (s *Snake) Head() core.GridRect {
	return s.segments[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the direction of the last step.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Cadence returns the current ticks per step.
func (s *Snake) Cadence() int {
	return s.cadence.ticksPerStep(len(s.segments))
}
