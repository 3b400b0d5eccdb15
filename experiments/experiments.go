package experiments

import (
	"errors"
	"fmt"
	"sync"
	"wumpus/config"
	"wumpus/engine"
	"wumpus/experiments/metrics"
	"wumpus/meta"
	"wumpus/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Run describes one line of an experiment: a config, the mode and the
// strategy (or agent) to run it with.
type Run struct {
	Config   config.Config
	Mode     Mode
	Strategy string
}

type Result struct {
	Configs  []metrics.RunConfig
	Sessions []metrics.SessionRecord
	Moves    []metrics.MoveRecord
}

// StrategyNames lists every search strategy by name, in declaration order.
func StrategyNames() []string {
	names := make([]string, len(searcher.Strategies))
	for i, s := range searcher.Strategies {
		names[i] = s.String()
	}
	return names
}

// RunStrategyComparison plays the same sessions with every strategy so their
// outcomes and search effort can be compared side by side.
func RunStrategyComparison(base config.Config, mode Mode, sessions int) (Result, error) {
	strategies := StrategyNames()
	if mode == Game {
		strategies = append(strategies, RandomAgent)
	}
	runs := make([]Run, len(strategies))
	for i, s := range strategies {
		runs[i] = Run{Config: base, Mode: mode, Strategy: s}
	}
	return runExperiment("strategy comparison", runs, sessions)
}

// Store writes a result under root/name/<timestamp>.
func Store(root, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", err
	}
	if err := writer.WriteRunConfigs(result.Configs); err != nil {
		return "", fmt.Errorf("failed to store run configs: %w", err)
	}
	log.Info().Msg("stored run configs")
	if err := writer.WriteSessionRecords(result.Sessions); err != nil {
		return "", fmt.Errorf("failed to write session records: %w", err)
	}
	log.Info().Msg("stored session records")
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runExperiment plays sessions per run, seeding session i with Seed+i so
// every run sees the same worlds. Sessions run concurrently, each on its own
// world.
func runExperiment(name string, runs []Run, sessions int) (Result, error) {
	log.Info().Msgf("starting %s experiment...", name)

	var result Result
	type job struct {
		run  int
		seed uint64
	}
	var jobs []job
	for i, r := range runs {
		result.Configs = append(result.Configs, metrics.RunConfig{
			ID:               i + 1,
			Mode:             string(r.Mode),
			Strategy:         r.Strategy,
			Width:            r.Config.Width,
			Height:           r.Config.Height,
			Wumpuses:         r.Config.Wumpuses,
			Pits:             r.Config.Pits,
			Gold:             r.Config.Gold,
			Dynamic:          r.Config.Dynamic,
			NonDeterministic: r.Config.NonDeterministic,
		})
		for s := 0; s < sessions; s++ {
			jobs = append(jobs, job{run: i, seed: r.Config.Seed + uint64(s)})
		}
	}

	records := make([]metrics.SessionRecord, len(jobs))
	moves := make([][]metrics.MoveMetric, len(jobs))
	var mu sync.Mutex
	completed := 0

	var g errgroup.Group
	g.SetLimit(meta.GO_ROUTINES)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			r := runs[j.run]
			cfg := r.Config
			cfg.Seed = j.seed

			session, mm, err := runSession(cfg, r.Mode, r.Strategy)
			if err != nil {
				return fmt.Errorf("%s with seed %d: %w", r.Strategy, j.seed, err)
			}
			records[i] = metrics.SessionRecord{ID: i + 1, Config: j.run + 1, Seed: j.seed, SessionMetric: session}
			moves[i] = mm

			mu.Lock()
			completed++
			log.Info().Msgf("completed session %d of %d (%s, seed %d): %s in %d turns",
				completed, len(jobs), r.Strategy, j.seed, session.Outcome, session.Turns)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result.Sessions = records
	for i, mm := range moves {
		for _, m := range mm {
			result.Moves = append(result.Moves, metrics.MoveRecord{Session: i + 1, MoveMetric: m})
		}
	}
	log.Info().Msgf("completed %s experiment", name)
	return result, nil
}

// runSession plays one session. A puzzle that stalls or runs out of turns is
// a recorded outcome, not a failure of the experiment.
func runSession(cfg config.Config, mode Mode, strategy string) (metrics.SessionMetric, []metrics.MoveMetric, error) {
	e, err := NewSession(cfg, mode, strategy)
	if err != nil {
		return metrics.SessionMetric{}, nil, err
	}
	session, moves, err := e.Run()
	if errors.Is(err, engine.ErrStalled) || errors.Is(err, engine.ErrTurnLimit) {
		err = nil
	}
	return session, moves, err
}
