package game

import (
	"fmt"
	"wumpus/utils"
)

// MoveAvatar moves the avatar one cell. A move off the grid is ignored and
// reported as false. Occupancy is not checked here.
func (w *World) MoveAvatar(d Direction) bool {
	next := w.avatar.Step(d)
	if d == None || !w.IsInBounds(next) {
		return false
	}
	w.avatar = next
	return true
}

// MoveHazard moves hazard i one cell, ignoring moves off the grid.
func (w *World) MoveHazard(i int, d Direction) bool {
	if i < 0 || i >= len(w.hazards) {
		panic(fmt.Sprintf("hazard index %d out of range [0,%d)", i, len(w.hazards)))
	}
	next := w.hazards[i].Step(d)
	if d == None || !w.IsInBounds(next) {
		return false
	}
	w.hazards[i] = next
	return true
}

// UpdateAvatar plays the avatar's turn in game mode: the move may slip
// sideways when the world is non-deterministic, and gold on the destination
// is picked up.
func (w *World) UpdateAvatar(d Direction) {
	w.looted = false
	if w.cfg.NonDeterministic {
		d = Perturb(d, w.cfg.DirectionProbability, w.rng)
	}
	w.MoveAvatar(d)

	if i := utils.FindIndex(w.gold, w.avatar); i >= 0 {
		w.gold = utils.Remove(w.gold, i)
		w.looted = true
	}
}

// UpdateHazards plays the hazards' turn when the world is dynamic. A hazard
// that senses the avatar closes in on it, any other hazard wanders.
func (w *World) UpdateHazards() {
	if !w.cfg.Dynamic {
		return
	}
	for i := range w.hazards {
		if Separation(w.hazards[i], w.avatar) < w.cfg.SenseDistance {
			w.hazards[i] = w.chase(w.hazards[i])
		} else {
			w.hazards[i] = w.wander(w.hazards[i])
		}
	}
}

// chase moves h one cell toward the avatar. When both axes differ the axis is
// chosen at random.
func (w *World) chase(h Position) Position {
	target := w.avatar
	dx, dy := sign(target.X-h.X), sign(target.Y-h.Y)
	switch {
	case dx != 0 && dy != 0:
		if w.rng.Float64() > 0.5 {
			h.Y += dy
		} else {
			h.X += dx
		}
	case dx != 0:
		h.X += dx
	case dy != 0:
		h.Y += dy
	}
	return h
}

// wander moves h by -1, 0 or +1 along a random axis, clamped to the grid.
func (w *World) wander(h Position) Position {
	step := w.rng.Intn(3) - 1
	if w.rng.Intn(2) == 0 {
		h.X = clamp(h.X+step, 0, w.maxX)
	} else {
		h.Y = clamp(h.Y+step, 0, w.maxY)
	}
	return h
}

// IsEnded updates and reports the status of a game: lost when the avatar
// shares a cell with a hazard or a pit, won once every piece of gold is taken.
func (w *World) IsEnded() bool {
	switch {
	case w.IsHazard(w.avatar) || w.IsObstacle(w.avatar):
		w.status = Lost
	case len(w.gold) == 0:
		w.status = Won
	default:
		w.status = Play
	}
	return w.status != Play
}

func (w *World) Status() Status { return w.status }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
