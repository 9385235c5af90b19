package experiments

import (
	"fmt"
	"monopoly/engine"
	"monopoly/experiments/metrics"
	"monopoly/game"
	"monopoly/player"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per match up
	Goroutines = 8
)

// Tournament plays seeded two-player games between strategy configs.
type Tournament struct {
	Name     string
	Configs  []metrics.StrategyConfig
	MatchUps [][]metrics.StrategyConfig
	Games    int // Per match up
	Seed     uint64
	Rules    game.Rules
	MaxTurns int
}

// Result holds the records of a finished tournament.
type Result struct {
	Games []metrics.GameRecord
	Turns []metrics.TurnRecord
}

// HeadToHead pairs every config against every other, once in each seat.
func HeadToHead(configs []metrics.StrategyConfig) [][]metrics.StrategyConfig {
	matchUps := [][]metrics.StrategyConfig{}
	for _, a := range configs {
		for _, b := range configs {
			if a.ID != b.ID {
				matchUps = append(matchUps, []metrics.StrategyConfig{a, b})
			}
		}
	}
	return matchUps
}

type task struct {
	id      int
	matchup []metrics.StrategyConfig
	seed    uint64
}

// Run plays every game of the tournament across Goroutines workers. Records come back in
// game order regardless of which worker finished first.
func (t *Tournament) Run() (Result, error) {
	games := t.Games
	if games <= 0 {
		games = NumGames
	}
	total := games * len(t.MatchUps)
	log.Info().Msgf("starting %s experiment with %d games...", t.Name, total)

	tasks := make(chan task, total)
	for mi, matchup := range t.MatchUps {
		for i := 0; i < games; i++ {
			id := mi*games + i + 1
			tasks <- task{id: id, matchup: matchup, seed: t.Seed + uint64(id)}
		}
	}
	close(tasks)

	records := make([]metrics.GameRecord, total)
	turns := make([][]metrics.TurnRecord, total)
	errs := make([]error, total)

	var wg sync.WaitGroup
	for i := 0; i < Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for tk := range tasks {
				record, turnRecords, err := t.runGame(tk)
				records[tk.id-1], turns[tk.id-1], errs[tk.id-1] = record, turnRecords, err
			}
		}()
	}
	wg.Wait()

	result := Result{Games: records}
	for i := range records {
		if errs[i] != nil {
			return Result{}, fmt.Errorf("game %d: %w", i+1, errs[i])
		}
		result.Turns = append(result.Turns, turns[i]...)
	}
	log.Info().Msgf("completed %s experiment", t.Name)
	return result, nil
}

// runGame executes a single game between two strategies.
func (t *Tournament) runGame(tk task) (metrics.GameRecord, []metrics.TurnRecord, error) {
	if len(tk.matchup) != 2 {
		return metrics.GameRecord{}, nil, fmt.Errorf("match up needs 2 strategies, got %d", len(tk.matchup))
	}
	names := make([]string, len(tk.matchup))
	deciders := make([]game.Decider, len(tk.matchup))
	for i, config := range tk.matchup {
		names[i] = fmt.Sprintf("%s-%d", config.Strategy, config.ID)
		d, err := player.New(config.Strategy, tk.seed+uint64(i), config.Reserve)
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		deciders[i] = d
	}

	collector := metrics.NewCollector()
	e, err := engine.New(names, deciders,
		engine.WithSeed(tk.seed),
		engine.WithRolledOrder(),
		engine.WithRules(t.Rules),
		engine.WithMetrics(collector),
		engine.WithLogger(log.Logger.Level(zerolog.WarnLevel)),
	)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	winner, finished := e.Run(t.MaxTurns)
	if !finished {
		winner = -1
	}
	gameMetric, turnMetrics := collector.Complete(winner)
	log.Debug().Msgf("completed game %d with winner: %d", tk.id, winner)

	record := metrics.GameRecord{
		ID:         tk.id,
		Agent1:     tk.matchup[0].ID,
		Agent2:     tk.matchup[1].ID,
		Seed:       tk.seed,
		GameMetric: gameMetric,
	}
	turnRecords := make([]metrics.TurnRecord, len(turnMetrics))
	for i, tm := range turnMetrics {
		turnRecords[i] = metrics.TurnRecord{Game: tk.id, TurnMetric: tm}
	}
	return record, turnRecords, nil
}

// Store writes the configs and records under root.
func (t *Tournament) Store(root string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, t.Name)
	if err != nil {
		return "", err
	}
	if err := writer.WriteStrategyConfigs(t.Configs); err != nil {
		return "", fmt.Errorf("failed to store strategy configs: %w", err)
	}
	log.Info().Msg("stored strategy configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(result.Turns); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msg("stored turn records")
	return writer.Dir(), nil
}

// Wins counts the games each strategy config won.
func (r Result) Wins() map[int]int {
	wins := make(map[int]int)
	for _, g := range r.Games {
		switch g.Winner {
		case 0:
			wins[g.Agent1]++
		case 1:
			wins[g.Agent2]++
		}
	}
	return wins
}
