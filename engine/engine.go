package engine

import (
	"errors"
	"runtime"
	"wumpus/experiments/metrics"
)

var (
	ErrConfigurationMismatch = errors.New("target hazard count does not match the world")
	// ErrStalled means a tick moved nobody although the target is not reached.
	// Re-planning on an unchanged world would repeat forever.
	ErrStalled   = errors.New("no agent can move towards its target")
	ErrTurnLimit = errors.New("turn limit reached")
)

type Engine interface {
	// Run plays a session till it ends or a max number of turns is reached
	Run() (metrics.SessionMetric, []metrics.MoveMetric, error)
}

func heapAlloc() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.HeapAlloc)
}
