package experiments

import (
	"encoding/csv"
	"monopoly/experiments/metrics"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadToHead(t *testing.T) {
	configs := []metrics.StrategyConfig{{ID: 1}, {ID: 2}, {ID: 3}}
	matchUps := HeadToHead(configs)
	require.Len(t, matchUps, 6, "Every ordered pair should play")
	for _, m := range matchUps {
		require.NotEqual(t, m[0].ID, m[1].ID)
	}
}

func TestTournament(t *testing.T) {
	configs := []metrics.StrategyConfig{
		{ID: 1, Strategy: "threshold", Reserve: 100},
		{ID: 2, Strategy: "random"},
	}
	tour := &Tournament{
		Name:     "smoke",
		Configs:  configs,
		MatchUps: HeadToHead(configs),
		Games:    3,
		Seed:     17,
		MaxTurns: 40,
	}

	result, err := tour.Run()
	require.NoError(t, err)
	require.Len(t, result.Games, 6)
	for i, g := range result.Games {
		require.Equal(t, i+1, g.ID, "Records should be in game order")
		require.LessOrEqual(t, g.TotalTurns, 40)
		require.Contains(t, []int{-1, 0, 1}, g.Winner)
	}

	turns := 0
	for _, g := range result.Games {
		turns += g.TotalTurns
	}
	require.Len(t, result.Turns, turns)

	again, err := tour.Run()
	require.NoError(t, err)
	for i := range result.Games {
		require.Equal(t, result.Games[i].Winner, again.Games[i].Winner, "Seeded games should replay identically")
		require.Equal(t, result.Games[i].TotalTurns, again.Games[i].TotalTurns)
	}

	dir, err := tour.Store(t.TempDir(), result)
	require.NoError(t, err)
	for file, rows := range map[string]int{
		"strategy_configs.csv": len(configs),
		"game_records.csv":     len(result.Games),
		"turn_records.csv":     len(result.Turns),
	} {
		f, err := os.Open(filepath.Join(dir, file))
		require.NoError(t, err)
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err)
		require.Len(t, records, rows+1, "%s should hold a header and one row per record", file)
	}
}

func TestTournamentRejectsUnknownStrategy(t *testing.T) {
	configs := []metrics.StrategyConfig{{ID: 1, Strategy: "threshold"}, {ID: 2, Strategy: "oracle"}}
	tour := &Tournament{Name: "bad", Configs: configs, MatchUps: HeadToHead(configs), Games: 1, MaxTurns: 5}
	_, err := tour.Run()
	require.Error(t, err)
}
