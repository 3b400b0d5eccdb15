package searcher

import (
	"fmt"
	"wumpus/experiments/metrics"
	"wumpus/game"
	"wumpus/meta"

	"github.com/rs/zerolog/log"
)

type Searcher struct {
	grid       Grid
	strategy   Strategy
	depthLimit int
	heuristic  Heuristic
	collector  metrics.Collector
	last       metrics.SearchMetric
}

type Option func(s *Searcher)

// WithDepthLimit sets the depth ceiling of depth-limited search. Nodes at the
// ceiling are never expanded, so a limit of 0 only finds a start that is
// already the goal.
func WithDepthLimit(limit int) Option {
	return func(s *Searcher) {
		if limit >= 0 {
			s.depthLimit = limit
		}
	}
}

// WithHeuristic replaces the Euclidean estimate used by greedy and A* search.
func WithHeuristic(h Heuristic) Option {
	return func(s *Searcher) {
		if h != nil {
			s.heuristic = h
		}
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(s *Searcher) {
		if c != nil {
			s.collector = c
		}
	}
}

func New(grid Grid, strategy Strategy, options ...Option) *Searcher {
	if grid == nil {
		panic("searcher needs a grid")
	}
	s := &Searcher{
		grid:       grid,
		strategy:   strategy,
		depthLimit: meta.DEPTH_LIMIT,
		heuristic:  Euclidean,
		collector:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search is a one-off search with default options.
func Search(grid Grid, strategy Strategy, start, goal game.Position) (Plan, error) {
	return New(grid, strategy).Search(start, goal)
}

func (s *Searcher) Strategy() Strategy { return s.strategy }

// LastMetric returns what the collector recorded for the latest search.
func (s *Searcher) LastMetric() metrics.SearchMetric { return s.last }

// Search returns the moves leading from start to goal. The grid is only read.
// A start equal to the goal yields an empty plan. A goal off the grid or on
// an obstacle fails with ErrInvalidTarget before anything is expanded, and a
// search that exhausts its frontier fails with ErrNoPath.
func (s *Searcher) Search(start, goal game.Position) (Plan, error) {
	s.collector.Start(s.strategy.String())
	plan, err := s.search(start, goal)
	s.last = s.collector.Complete(len(plan), err == nil)

	log.Debug().
		Str("strategy", s.strategy.String()).
		Stringer("start", start).
		Stringer("goal", goal).
		Int("length", len(plan)).
		Err(err).
		Msg("search finished")
	return plan, err
}

func (s *Searcher) search(start, goal game.Position) (Plan, error) {
	if start == goal {
		return Plan{}, nil
	}
	if !s.grid.IsInBounds(goal) || s.grid.IsObstacle(goal) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, goal)
	}
	p, ok := s.policyFor(s.strategy, goal)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s.strategy)
	}

	t := &tree{}
	frontier := p.frontier()
	seen := p.duplicates()
	seq := 0
	push := func(id NodeID) {
		n := t.get(id)
		seen.pushed(n)
		frontier.push(entry{id: id, priority: p.priority(n), seq: seq})
		seq++
		s.collector.AddGenerated()
	}

	push(t.root(start))
	cutoff := false
	for frontier.size() > 0 {
		id := frontier.pop().id
		n := t.get(id)
		if !seen.popped(n) {
			continue
		}
		if n.IsGoal(goal) {
			return t.plan(id), nil
		}
		if p.limited && n.Depth >= s.depthLimit {
			cutoff = true
			continue
		}

		s.collector.AddExpanded()
		for _, d := range s.grid.LegalActions(n.Position) {
			child := Node{Position: n.Position.Step(d), PathCost: n.PathCost + 1}
			if !seen.admits(child) {
				continue
			}
			push(t.child(id, d))
		}
	}

	if cutoff {
		return nil, fmt.Errorf("%w: depth limit %d reached", ErrNoPath, s.depthLimit)
	}
	return nil, ErrNoPath
}
