package game

import (
	"wumpus/config"
)

// World is the mutable state of one session. Searches read it through the
// query methods and never change it; only the movement rules do.
type World struct {
	cfg  config.Config
	rng  Random
	maxX int
	maxY int

	avatar  Position
	hazards []Position
	pits    []Position
	gold    []Position

	looted bool
	status Status
}

// New builds a game world with randomly placed hazards, avatar, gold and pits.
func New(cfg config.Config, rng Random) (*World, error) {
	l, err := randomLayout(rng, cfg.Width-1, cfg.Height-1, cfg.Wumpuses, cfg.Pits, cfg.Gold)
	if err != nil {
		return nil, err
	}
	return NewFromLayout(cfg, l, rng)
}

// NewPuzzle builds a world holding only the avatar and the hazards.
func NewPuzzle(cfg config.Config, rng Random) (*World, error) {
	l, err := randomLayout(rng, cfg.Width-1, cfg.Height-1, cfg.Wumpuses, 0, 0)
	if err != nil {
		return nil, err
	}
	return NewFromLayout(cfg, l, rng)
}

// NewFromLayout builds a world from explicit positions. The entity counts of
// cfg are ignored in favour of the layout.
func NewFromLayout(cfg config.Config, l Layout, rng Random) (*World, error) {
	w := &World{
		cfg:  cfg,
		rng:  rng,
		maxX: cfg.Width - 1,
		maxY: cfg.Height - 1,
	}
	if err := l.validate(w.maxX, w.maxY); err != nil {
		return nil, err
	}
	w.avatar = l.Avatar
	w.hazards = append([]Position{}, l.Hazards...)
	w.pits = append([]Position{}, l.Pits...)
	w.gold = append([]Position{}, l.Gold...)
	return w, nil
}

func (w *World) Config() config.Config { return w.cfg }

// Bounds returns the largest valid x and y.
func (w *World) Bounds() (maxX, maxY int) { return w.maxX, w.maxY }

func (w *World) Avatar() Position { return w.avatar }

func (w *World) Hazards() []Position { return append([]Position{}, w.hazards...) }

func (w *World) Pits() []Position { return append([]Position{}, w.pits...) }

func (w *World) Gold() []Position { return append([]Position{}, w.gold...) }

// Looted reports whether the avatar picked up gold on its last move.
func (w *World) Looted() bool { return w.looted }

func (w *World) Configuration() Configuration {
	return Configuration{Avatar: w.avatar, Hazards: w.Hazards()}
}

func (w *World) IsInBounds(p Position) bool {
	return p.X >= 0 && p.X <= w.maxX && p.Y >= 0 && p.Y <= w.maxY
}

// IsObstacle reports a static obstacle (a pit) at p.
func (w *World) IsObstacle(p Position) bool {
	for _, pit := range w.pits {
		if pit == p {
			return true
		}
	}
	return false
}

func (w *World) IsHazard(p Position) bool {
	return w.HazardAt(p) >= 0
}

// HazardAt returns the index of the hazard at p, or -1.
func (w *World) HazardAt(p Position) int {
	for i, h := range w.hazards {
		if h == p {
			return i
		}
	}
	return -1
}

// IsTraversable reports whether p can be entered right now. Only the cell
// itself matters: standing next to a hazard or pit is fine.
func (w *World) IsTraversable(p Position) bool {
	return w.IsInBounds(p) && !w.IsObstacle(p) && !w.IsHazard(p)
}

// LegalActions returns the directions leading from p to a traversable cell,
// in the order of Directions.
func (w *World) LegalActions(p Position) []Direction {
	actions := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if w.IsTraversable(p.Step(d)) {
			actions = append(actions, d)
		}
	}
	return actions
}
