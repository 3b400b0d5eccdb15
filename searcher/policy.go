package searcher

import (
	"wumpus/game"

	"github.com/zyedidia/generic/mapset"
)

// duplicates decides which generated nodes enter the frontier and which
// popped nodes are worth expanding.
type duplicates interface {
	admits(n Node) bool
	pushed(n Node)
	// popped returns false for entries that must be skipped.
	popped(n Node) bool
}

// frontierOrExplored drops a child already expanded or already waiting in
// the frontier.
type frontierOrExplored struct {
	explored mapset.Set[game.Position]
	waiting  mapset.Set[game.Position]
}

func newFrontierOrExplored() duplicates {
	return &frontierOrExplored{
		explored: mapset.New[game.Position](),
		waiting:  mapset.New[game.Position](),
	}
}

func (d *frontierOrExplored) admits(n Node) bool {
	return !d.explored.Has(n.Position) && !d.waiting.Has(n.Position)
}

func (d *frontierOrExplored) pushed(n Node) { d.waiting.Put(n.Position) }

func (d *frontierOrExplored) popped(n Node) bool {
	d.waiting.Remove(n.Position)
	d.explored.Put(n.Position)
	return true
}

// bestCost keeps the cheapest known cost per position. A child is admitted
// only when it strictly improves on it, and superseded entries are skipped
// when they surface.
type bestCost struct {
	best map[game.Position]int
}

func newBestCost() duplicates {
	return &bestCost{best: map[game.Position]int{}}
}

func (d *bestCost) admits(n Node) bool {
	c, ok := d.best[n.Position]
	return !ok || n.PathCost < c
}

func (d *bestCost) pushed(n Node) { d.best[n.Position] = n.PathCost }

func (d *bestCost) popped(n Node) bool {
	return n.PathCost <= d.best[n.Position]
}

// expandedOnce lets a position be expanded a single time.
type expandedOnce struct {
	expanded mapset.Set[game.Position]
}

func newExpandedOnce() duplicates {
	return &expandedOnce{expanded: mapset.New[game.Position]()}
}

func (d *expandedOnce) admits(n Node) bool { return !d.expanded.Has(n.Position) }

func (d *expandedOnce) pushed(n Node) {}

func (d *expandedOnce) popped(n Node) bool {
	if d.expanded.Has(n.Position) {
		return false
	}
	d.expanded.Put(n.Position)
	return true
}

// policy bundles what sets one strategy apart from another.
type policy struct {
	frontier   func() frontier
	duplicates func() duplicates
	priority   func(n Node) float64
	limited    bool
}

func (s *Searcher) policyFor(strategy Strategy, goal game.Position) (policy, bool) {
	h := func(n Node) float64 { return s.heuristic(n.Position, goal) }
	switch strategy {
	case DepthFirst:
		return policy{frontier: newLIFO, duplicates: newFrontierOrExplored, priority: none}, true
	case BreadthFirst:
		return policy{frontier: newFIFO, duplicates: newFrontierOrExplored, priority: none}, true
	case UniformCost:
		return policy{frontier: newMinHeap, duplicates: newBestCost, priority: pathCost}, true
	case Greedy:
		return policy{frontier: newMinHeap, duplicates: newExpandedOnce, priority: h}, true
	case AStar:
		return policy{frontier: newMinHeap, duplicates: newExpandedOnce, priority: func(n Node) float64 {
			return float64(n.PathCost) + h(n)
		}}, true
	case DepthLimited:
		return policy{frontier: newLIFO, duplicates: newFrontierOrExplored, priority: none, limited: true}, true
	}
	return policy{}, false
}

func none(Node) float64 { return 0 }

func pathCost(n Node) float64 { return float64(n.PathCost) }
