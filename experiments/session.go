package experiments

import (
	"fmt"
	"wumpus/config"
	"wumpus/engine"
	"wumpus/game"
	"wumpus/searcher"
	"wumpus/searcher/agent"

	"golang.org/x/exp/rand"
)

type Mode string

const (
	Puzzle Mode = "puzzle"
	Game   Mode = "game"
)

// RandomAgent names the baseline agent in game mode.
const RandomAgent = "random"

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Puzzle, Game:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// NewSession builds a ready-to-run engine for one session. The world, the
// puzzle target and every later random draw come from cfg.Seed, so equal
// configs replay equal sessions.
func NewSession(cfg config.Config, mode Mode, strategy string) (engine.Engine, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	if mode == Game && strategy == RandomAgent {
		w, err := game.New(cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to build world: %w", err)
		}
		return engine.NewLocalEngine(w, agent.NewRandomAgent(rng), RandomAgent, engine.WithMaxTurns(cfg.MaxTurns)), nil
	}

	s, err := searcher.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{searcher.WithDepthLimit(cfg.DepthLimit)}

	switch mode {
	case Puzzle:
		w, err := game.NewPuzzle(cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to build world: %w", err)
		}
		goal, err := game.NewPuzzle(cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to build target: %w", err)
		}
		planner := engine.NewPlanner(w, s, options...)
		return engine.NewPuzzle(planner, goal.Configuration(), engine.WithMaxTurns(cfg.MaxTurns)), nil
	case Game:
		w, err := game.New(cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to build world: %w", err)
		}
		return engine.NewLocalEngine(w, agent.NewSearchAgent(s, options...), s.String(), engine.WithMaxTurns(cfg.MaxTurns)), nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}
