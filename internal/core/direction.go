package core

import "math/rand"

// Direction is one of the four grid movement directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Velocity returns the unit cell offset for the direction.
func (d Direction) Velocity() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// ResolveTurn returns the direction to travel after requesting a turn.
// A request to reverse straight back is ignored and current is kept.
func ResolveTurn(current, requested Direction) Direction {
	if requested == current.Opposite() {
		return current
	}
	return requested
}

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
