package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Duration   time.Duration
	Expanded   int
	Generated  int
	PlanLength int
	Found      bool
}

type MoveMetric struct {
	Step  int
	Agent string // "avatar" or "wumpus-<i>"
	SearchMetric
}

type SessionMetric struct {
	Mode      string
	Strategy  string
	Outcome   string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
	HeapBytes int64 // heap growth over the session, can be negative after a GC
}

type Collector interface {
	Start(strategy string)
	AddExpanded()
	AddGenerated()
	Complete(planLength int, found bool) SearchMetric
}

type collector struct {
	strategy  string
	startTime time.Time
	expanded  atomic.Int32
	generated atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.expanded.Store(0)
	m.generated.Store(0)
}

func (m *collector) AddExpanded() {
	m.expanded.Add(1)
}

func (m *collector) AddGenerated() {
	m.generated.Add(1)
}

func (m *collector) Complete(planLength int, found bool) SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Duration:   time.Since(m.startTime),
		Expanded:   int(m.expanded.Load()),
		Generated:  int(m.generated.Load()),
		PlanLength: planLength,
		Found:      found,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)                           {}
func (m *dummyCollector) AddExpanded()                                    {}
func (m *dummyCollector) AddGenerated()                                   {}
func (m *dummyCollector) Complete(planLength int, found bool) SearchMetric { return SearchMetric{} }
