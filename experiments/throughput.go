package experiments

import (
	"wumpus/config"
)

// RunScalingExperiment solves puzzles of growing size with every strategy to
// see how search effort grows with the grid.
func RunScalingExperiment(base config.Config, sizes []int, sessions int) (Result, error) {
	var runs []Run
	for _, size := range sizes {
		cfg := base
		cfg.Width = size
		cfg.Height = size
		for _, s := range StrategyNames() {
			runs = append(runs, Run{Config: cfg, Mode: Puzzle, Strategy: s})
		}
	}
	return runExperiment("scaling", runs, sessions)
}
