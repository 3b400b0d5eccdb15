// Package searcher finds action sequences between two cells of a grid with
// classic uninformed and informed graph search.
package searcher

import (
	"errors"
	"fmt"
	"strings"
	"wumpus/game"
)

var (
	// ErrNoPath means the frontier ran dry before the goal was reached.
	ErrNoPath          = errors.New("no path to goal")
	ErrInvalidTarget   = errors.New("goal is off the grid or on an obstacle")
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// Grid is what a search needs to know about the world. *game.World
// implements it.
type Grid interface {
	IsInBounds(p game.Position) bool
	IsObstacle(p game.Position) bool
	LegalActions(p game.Position) []game.Direction
}

type Strategy int

const (
	DepthFirst Strategy = iota
	BreadthFirst
	UniformCost
	Greedy
	AStar
	DepthLimited
)

var Strategies = []Strategy{DepthFirst, BreadthFirst, UniformCost, Greedy, AStar, DepthLimited}

var strategyNames = map[Strategy]string{
	DepthFirst:   "dfs",
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	Greedy:       "greedy",
	AStar:        "astar",
	DepthLimited: "dls",
}

var strategyAliases = map[string]Strategy{
	"depth-first":   DepthFirst,
	"breadth-first": BreadthFirst,
	"uniform-cost":  UniformCost,
	"best-first":    Greedy,
	"a*":            AStar,
	"depth-limited": DepthLimited,
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	if s, ok := strategyAliases[name]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Plan is a sequence of moves. An empty plan means the start is the goal.
type Plan []game.Direction

// Walk returns where the plan ends when followed from start.
func (p Plan) Walk(start game.Position) game.Position {
	for _, d := range p {
		start = start.Step(d)
	}
	return start
}

func (p Plan) String() string {
	parts := make([]string, len(p))
	for i, d := range p {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal game.Position) float64

func Euclidean(from, goal game.Position) float64 {
	return game.Separation(from, goal)
}

func Manhattan(from, goal game.Position) float64 {
	return float64(game.Manhattan(from, goal))
}


