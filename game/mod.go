// Package game models the wumpus world: a bounded grid holding an avatar,
// mobile hazards (wumpuses), static pits and gold.
package game

import (
	"fmt"
	"math"
)

// Position is a cell on the grid. The origin is the bottom-left corner.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

// Step returns the neighbouring cell in direction d. It does not check bounds.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Separation is the Euclidean distance between two cells.
func Separation(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Status int

const (
	Play Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "play"
	}
}

// Random is the source of randomness a world draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Configuration is a snapshot of the agent positions: the avatar and every
// hazard, paired by index.
type Configuration struct {
	Avatar  Position
	Hazards []Position
}

func (c Configuration) Copy() Configuration {
	hazards := make([]Position, len(c.Hazards))
	copy(hazards, c.Hazards)
	return Configuration{Avatar: c.Avatar, Hazards: hazards}
}

// Equal compares positionally: hazard i must match hazard i.
func (c Configuration) Equal(other Configuration) bool {
	if c.Avatar != other.Avatar || len(c.Hazards) != len(other.Hazards) {
		return false
	}
	for i := range c.Hazards {
		if c.Hazards[i] != other.Hazards[i] {
			return false
		}
	}
	return true
}
