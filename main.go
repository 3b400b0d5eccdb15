package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"wumpus/config"
	"wumpus/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		mode       = flag.String("mode", "puzzle", "puzzle, game, compare or scaling")
		strategy   = flag.String("strategy", "", "dfs, bfs, ucs, greedy, astar, dls (or random in game mode)")
		configPath = flag.String("config", "", "YAML config file")
		seed       = flag.Int64("seed", -1, "random seed, overrides the config")
		depthLimit = flag.Int("depth-limit", -1, "depth limit for dls, overrides the config")
		sessions   = flag.Int("n", 10, "sessions per strategy in compare and scaling mode")
		play       = flag.String("play", "puzzle", "session mode used by compare")
		sizes      = flag.String("sizes", "5,10,15,20", "grid sizes used by scaling")
		out        = flag.String("out", "experiments", "directory for experiment results")
		verbose    = flag.Bool("v", false, "log every search and board")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *seed >= 0 {
		cfg.Seed = uint64(*seed)
	}
	if *depthLimit >= 0 {
		cfg.DepthLimit = *depthLimit
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	switch *mode {
	case "compare":
		m, err := experiments.ParseMode(*play)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		result, err := experiments.RunStrategyComparison(cfg, m, *sessions)
		store(*out, "comparison", result, err)
	case "scaling":
		result, err := experiments.RunScalingExperiment(cfg, parseSizes(*sizes), *sessions)
		store(*out, "scaling", result, err)
	default:
		m, err := experiments.ParseMode(*mode)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		e, err := experiments.NewSession(cfg, m, cfg.Strategy)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up session")
		}
		session, _, err := e.Run()
		if err != nil {
			log.Error().Err(err).Msgf("%s ended after %d turns", m, session.Turns)
			os.Exit(1)
		}
		log.Info().Msgf("%s %s after %d turns in %s", m, session.Outcome, session.Turns, session.Duration)
	}
}

func store(root, name string, result experiments.Result, err error) {
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	dir, err := experiments.Store(root, name, result)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store results")
	}
	log.Info().Msgf("results written to %s", dir)
}

func parseSizes(s string) []int {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			log.Fatal().Msgf("bad grid size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes
}
