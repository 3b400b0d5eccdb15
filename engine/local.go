package engine

import (
	"time"
	"wumpus/experiments/metrics"
	"wumpus/game"
	"wumpus/searcher/agent"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays the game mode: the avatar hunts gold while hazards react
// to it, until the game is won, lost or runs out of turns.
type LocalEngine struct {
	World    *game.World
	Agent    agent.Agent
	name     string
	maxTurns int
}

func NewLocalEngine(w *game.World, a agent.Agent, name string, opts ...Option) *LocalEngine {
	o := buildOptions(opts)
	return &LocalEngine{World: w, Agent: a, name: name, maxTurns: o.maxTurns}
}

// Run executes the entire game loop. Running out of turns is not an error,
// the outcome is then "play".
func (e *LocalEngine) Run() (metrics.SessionMetric, []metrics.MoveMetric, error) {
	session := metrics.SessionMetric{
		Mode:      "game",
		Strategy:  e.name,
		StartTime: time.Now(),
	}
	heapBefore := heapAlloc()
	var moves []metrics.MoveMetric

	log.Info().Msgf("avatar is starting at %v", e.World.Avatar())

	for !e.World.IsEnded() && session.Turns < e.maxTurns {
		session.Turns++
		move, m := e.Agent.FindMove(e.World)
		moves = append(moves, metrics.MoveMetric{Step: session.Turns, Agent: "avatar", SearchMetric: m})

		e.World.UpdateAvatar(move)
		if e.World.Looted() {
			log.Info().Int("turn", session.Turns).Msgf("gold picked up at %v", e.World.Avatar())
		}
		e.World.UpdateHazards()
		log.Debug().Int("turn", session.Turns).Str("move", move.String()).Msgf("board:\n%s", e.World.Render())
	}

	session.EndTime = time.Now()
	session.Duration = session.EndTime.Sub(session.StartTime)
	session.HeapBytes = heapAlloc() - heapBefore
	session.Outcome = e.World.Status().String()

	switch e.World.Status() {
	case game.Won:
		log.Info().Msgf("game won in %d turns", session.Turns)
	case game.Lost:
		log.Info().Msgf("game lost after %d turns", session.Turns)
	default:
		log.Warn().Msgf("stopped after %d turns (game not over yet)", e.maxTurns)
	}
	return session, moves, nil
}
