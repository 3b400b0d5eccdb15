package engine

import (
	"errors"
	"fmt"
	"wumpus/experiments/metrics"
	"wumpus/game"
	"wumpus/searcher"

	"github.com/rs/zerolog/log"
)

// Planner moves the avatar and every hazard one step per tick towards their
// targets, planning a fresh path for each of them every tick.
type Planner struct {
	world     *game.World
	strategy  searcher.Strategy
	options   []searcher.Option
	collector metrics.Collector
	tick      int
	moves     []metrics.MoveMetric
}

func NewPlanner(w *game.World, strategy searcher.Strategy, options ...searcher.Option) *Planner {
	p := &Planner{
		world:     w,
		strategy:  strategy,
		collector: metrics.NewCollector(),
	}
	p.options = append(append([]searcher.Option{}, options...), searcher.WithMetrics(p.collector))
	return p
}

func (p *Planner) World() *game.World { return p.world }

// Moves returns the metrics of every search the planner has run.
func (p *Planner) Moves() []metrics.MoveMetric { return p.moves }

// PlanTick advances every agent by at most one cell and returns the new
// configuration. The avatar goes first, then hazards in index order; each
// one plans against the world as the previous agents left it. An agent with
// no path to its target stays where it is.
func (p *Planner) PlanTick(target game.Configuration) (game.Configuration, error) {
	hazards := p.world.Hazards()
	if len(target.Hazards) != len(hazards) {
		return p.world.Configuration(), fmt.Errorf("%w: %d targets for %d hazards",
			ErrConfigurationMismatch, len(target.Hazards), len(hazards))
	}
	p.tick++

	err := p.step("avatar", p.world.Avatar(), target.Avatar, p.world.MoveAvatar)
	if err != nil {
		return p.world.Configuration(), err
	}
	for i := range hazards {
		// read the live position, earlier hazards may have moved
		from := p.world.Hazards()[i]
		move := func(d game.Direction) bool { return p.world.MoveHazard(i, d) }
		if err := p.step(fmt.Sprintf("wumpus-%d", i), from, target.Hazards[i], move); err != nil {
			return p.world.Configuration(), err
		}
	}
	return p.world.Configuration(), nil
}

func (p *Planner) step(agent string, from, to game.Position, move func(game.Direction) bool) error {
	s := searcher.New(p.world, p.strategy, p.options...)
	plan, err := s.Search(from, to)
	p.moves = append(p.moves, metrics.MoveMetric{
		Step:         p.tick,
		Agent:        agent,
		SearchMetric: s.LastMetric(),
	})

	switch {
	case errors.Is(err, searcher.ErrNoPath), errors.Is(err, searcher.ErrInvalidTarget):
		log.Debug().Str("agent", agent).Stringer("at", from).Err(err).Msg("staying put")
		return nil
	case err != nil:
		return err
	}
	if len(plan) > 0 {
		move(plan[0])
	}
	return nil
}

// IsSolved reports whether the avatar and each hazard stand on their own
// target. Hazards are matched by index, not as a set.
func (p *Planner) IsSolved(target game.Configuration) bool {
	return p.world.Configuration().Equal(target)
}
