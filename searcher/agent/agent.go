package agent

import (
	"wumpus/experiments/metrics"
	"wumpus/game"
)

type Agent interface {
	// FindMove returns the avatar's next move (game.None to stay) and the
	// performance metrics of the search behind it, if any.
	FindMove(w *game.World) (game.Direction, metrics.SearchMetric)
}

// nearestGold returns the gold piece closest to p by straight-line distance.
// Ties go to the piece listed first.
func nearestGold(w *game.World, p game.Position) (game.Position, bool) {
	gold := w.Gold()
	if len(gold) == 0 {
		return game.Position{}, false
	}
	best := gold[0]
	for _, g := range gold[1:] {
		if game.Separation(p, g) < game.Separation(p, best) {
			best = g
		}
	}
	return best, true
}
