package agent

import (
	"errors"
	"slices"
	"wumpus/experiments/metrics"
	"wumpus/game"
	"wumpus/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	strategy searcher.Strategy
	options  []searcher.Option
}

// NewSearchAgent returns an agent that plans a path to the nearest gold every
// turn and plays its first move.
func NewSearchAgent(strategy searcher.Strategy, options ...searcher.Option) Agent {
	return searchAgent{strategy: strategy, options: options}
}

func (a searchAgent) FindMove(w *game.World) (game.Direction, metrics.SearchMetric) {
	avatar := w.Avatar()
	gold, ok := nearestGold(w, avatar)
	if !ok {
		return game.None, metrics.SearchMetric{}
	}

	s := searcher.New(w, a.strategy, a.options...)
	plan, err := s.Search(avatar, gold)
	switch {
	case err == nil && len(plan) > 0:
		return plan[0], s.LastMetric()
	case err != nil && !errors.Is(err, searcher.ErrNoPath) && !errors.Is(err, searcher.ErrInvalidTarget):
		log.Warn().Err(err).Msg("search agent could not plan")
	}
	return directMove(w, avatar, gold), s.LastMetric()
}

// directMove closes the gap to goal on x, then on y, using only legal moves.
// When neither helps it sidesteps with the first legal move, or stays.
func directMove(w *game.World, from, goal game.Position) game.Direction {
	legal := w.LegalActions(from)
	if len(legal) == 0 {
		return game.None
	}
	wanted := []game.Direction{}
	switch {
	case goal.X > from.X:
		wanted = append(wanted, game.East)
	case goal.X < from.X:
		wanted = append(wanted, game.West)
	}
	switch {
	case goal.Y > from.Y:
		wanted = append(wanted, game.North)
	case goal.Y < from.Y:
		wanted = append(wanted, game.South)
	}
	for _, d := range wanted {
		if slices.Contains(legal, d) {
			return d
		}
	}
	return legal[0]
}
