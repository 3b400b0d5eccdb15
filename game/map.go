package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOverlap     = errors.New("positions overlap")
	ErrNoFreeCell  = errors.New("no free cell left on the grid")
)

// Layout fixes where every entity of a world starts.
type Layout struct {
	Avatar  Position
	Hazards []Position
	Pits    []Position
	Gold    []Position
}

// PickUniquePosition draws random cells until it finds one not in taken.
func PickUniquePosition(rng Random, maxX, maxY int, taken []Position) (Position, error) {
	cells := (maxX + 1) * (maxY + 1)
	used := make(map[Position]struct{}, len(taken))
	for _, p := range taken {
		used[p] = struct{}{}
	}
	if len(used) >= cells {
		return Position{}, ErrNoFreeCell
	}
	for {
		p := Position{X: rng.Intn(maxX + 1), Y: rng.Intn(maxY + 1)}
		if _, ok := used[p]; !ok {
			return p, nil
		}
	}
}

// randomLayout places hazards, then the avatar, then gold, then pits, each on
// a cell nobody else holds.
func randomLayout(rng Random, maxX, maxY, hazards, pits, gold int) (Layout, error) {
	var l Layout
	var taken []Position
	pick := func() (Position, error) {
		p, err := PickUniquePosition(rng, maxX, maxY, taken)
		if err != nil {
			return Position{}, err
		}
		taken = append(taken, p)
		return p, nil
	}

	for i := 0; i < hazards; i++ {
		p, err := pick()
		if err != nil {
			return Layout{}, err
		}
		l.Hazards = append(l.Hazards, p)
	}
	avatar, err := pick()
	if err != nil {
		return Layout{}, err
	}
	l.Avatar = avatar
	for i := 0; i < gold; i++ {
		p, err := pick()
		if err != nil {
			return Layout{}, err
		}
		l.Gold = append(l.Gold, p)
	}
	for i := 0; i < pits; i++ {
		p, err := pick()
		if err != nil {
			return Layout{}, err
		}
		l.Pits = append(l.Pits, p)
	}
	return l, nil
}

func (l Layout) validate(maxX, maxY int) error {
	inBounds := func(p Position) bool {
		return p.X >= 0 && p.X <= maxX && p.Y >= 0 && p.Y <= maxY
	}
	seen := map[Position]struct{}{}
	all := append([]Position{l.Avatar}, l.Hazards...)
	all = append(all, l.Pits...)
	all = append(all, l.Gold...)
	for _, p := range all {
		if !inBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %v", ErrOverlap, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
