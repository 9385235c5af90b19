package main

import (
	"io"
	"monopoly/engine"
	"monopoly/experiments"
	"monopoly/experiments/metrics"
	"monopoly/game"
	"monopoly/meta"
	"monopoly/player"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	closeLog := setupLogging(cfg)
	defer closeLog()

	if cfg.Games > 0 {
		runTournament(cfg)
		return
	}
	deciders := make([]game.Decider, len(cfg.Players))
	for i := range deciders {
		d, err := player.New(cfg.Strategy, cfg.Seed+uint64(i)+1, cfg.Reserve)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create players")
		}
		deciders[i] = d
	}

	e, err := engine.New(cfg.Players, deciders, engine.WithSeed(cfg.Seed), engine.WithRules(cfg.Rules()), engine.WithRolledOrder())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	winner, finished := e.Run(cfg.MaxTurns)
	if !finished {
		log.Info().Msgf("no winner after %d turns", cfg.MaxTurns)
		return
	}
	log.Info().Msgf("winner: %s", cfg.Players[winner])
}

// setupLogging writes to the console and, when MONOPOLY_LOG_DIR is set, to a daily file.
func setupLogging(cfg meta.Config) func() {
	zerolog.SetGlobalLevel(cfg.Level())
	var console io.Writer = os.Stderr
	if cfg.LogPretty {
		console = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	f, err := cfg.OpenLogFile(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	if f == nil {
		log.Logger = log.Output(console)
		return func() {}
	}
	log.Logger = log.Output(zerolog.MultiLevelWriter(console, f))
	return func() { f.Close() }
}

// runTournament pits the threshold strategy against the random one and stores the records.
func runTournament(cfg meta.Config) {
	configs := []metrics.StrategyConfig{
		{ID: 1, Strategy: player.ThresholdStrategy, Reserve: cfg.Reserve},
		{ID: 2, Strategy: player.RandomStrategy},
	}
	t := &experiments.Tournament{
		Name:     "strategies",
		Configs:  configs,
		MatchUps: experiments.HeadToHead(configs),
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		Rules:    cfg.Rules(),
		MaxTurns: cfg.MaxTurns,
	}

	result, err := t.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	dir, err := t.Store(cfg.ExperimentDir, result)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store tournament")
	}
	wins := result.Wins()
	for _, c := range configs {
		log.Info().Msgf("%s won %d of %d games", c.Strategy, wins[c.ID], len(result.Games))
	}
	log.Info().Msgf("records stored in %s", dir)
}
