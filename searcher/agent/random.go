package agent

import (
	"wumpus/experiments/metrics"
	"wumpus/game"
)

type randomAgent struct {
	rng game.Random
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// move.
func NewRandomAgent(rng game.Random) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(w *game.World) (game.Direction, metrics.SearchMetric) {
	legal := w.LegalActions(w.Avatar())
	if len(legal) == 0 {
		return game.None, metrics.SearchMetric{}
	}
	return legal[a.rng.Intn(len(legal))], metrics.SearchMetric{}
}
