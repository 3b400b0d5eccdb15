package engine

import (
	"fmt"
	"time"
	"wumpus/experiments/metrics"
	"wumpus/game"
	"wumpus/meta"

	"github.com/rs/zerolog/log"
)

// Puzzle drives a planner tick by tick until the world matches the target.
type Puzzle struct {
	planner  *Planner
	target   game.Configuration
	maxTurns int
}

type Option func(o *options)

type options struct {
	maxTurns int
}

func WithMaxTurns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTurns = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{maxTurns: meta.MAX_TURNS}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewPuzzle(planner *Planner, target game.Configuration, opts ...Option) *Puzzle {
	o := buildOptions(opts)
	return &Puzzle{planner: planner, target: target.Copy(), maxTurns: o.maxTurns}
}

func (p *Puzzle) Run() (metrics.SessionMetric, []metrics.MoveMetric, error) {
	w := p.planner.World()
	session := metrics.SessionMetric{
		Mode:      "puzzle",
		Strategy:  p.planner.strategy.String(),
		StartTime: time.Now(),
	}
	heapBefore := heapAlloc()

	log.Info().Msgf("solving puzzle from %v to %v", w.Configuration(), p.target)
	log.Debug().Msgf("start:\n%s", w.Render())

	err := p.loop(&session)

	session.EndTime = time.Now()
	session.Duration = session.EndTime.Sub(session.StartTime)
	session.HeapBytes = heapAlloc() - heapBefore
	if err == nil {
		session.Outcome = game.Won.String()
		log.Info().Msgf("puzzle solved in %d turns", session.Turns)
	} else {
		session.Outcome = game.Lost.String()
		log.Warn().Err(err).Msgf("puzzle failed after %d turns", session.Turns)
	}
	return session, p.planner.Moves(), err
}

func (p *Puzzle) loop(session *metrics.SessionMetric) error {
	for !p.planner.IsSolved(p.target) {
		if session.Turns >= p.maxTurns {
			return fmt.Errorf("%w: %d", ErrTurnLimit, p.maxTurns)
		}
		before := p.planner.World().Configuration()
		after, err := p.planner.PlanTick(p.target)
		if err != nil {
			return err
		}
		session.Turns++
		log.Debug().Int("turn", session.Turns).Msgf("board:\n%s", p.planner.World().Render())

		if after.Equal(before) && !p.planner.IsSolved(p.target) {
			return fmt.Errorf("%w: stuck at %v", ErrStalled, after)
		}
	}
	return nil
}
