package meta

import (
	"monopoly/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, []string{"Alice", "Bob", "Carol", "Dave"}, cfg.Players)
		require.Equal(t, "threshold", cfg.Strategy)
		require.Equal(t, 300, cfg.MaxTurns)
		require.NotZero(t, cfg.Seed, "A zero seed should be replaced by a random one")
		require.Equal(t, game.NewStandardRules(), cfg.Rules())
		require.Equal(t, zerolog.InfoLevel, cfg.Level())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MONOPOLY_PLAYERS", "x,y")
		t.Setenv("MONOPOLY_SEED", "99")
		t.Setenv("MONOPOLY_STARTING_CASH", "2000")
		t.Setenv("MONOPOLY_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, []string{"x", "y"}, cfg.Players)
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, 2000, cfg.Rules().StartingCash())
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
	})

	t.Run("rejects too few players", func(t *testing.T) {
		t.Setenv("MONOPOLY_PLAYERS", "solo")
		_, err := Load()
		require.ErrorIs(t, err, game.ErrInvalidPlayerCount)
	})

	t.Run("rejects broken rules", func(t *testing.T) {
		t.Setenv("MONOPOLY_AUCTION_INCREMENT", "0")
		_, err := Load()
		require.ErrorIs(t, err, game.ErrInvalidConfig)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("MONOPOLY_MAX_TURNS", "many")
		_, err := Load()
		require.ErrorContains(t, err, "parse env:")
	})
}

func TestOpenLogFile(t *testing.T) {
	t.Run("disabled without a directory", func(t *testing.T) {
		f, err := Config{}.OpenLogFile(time.Now())
		require.NoError(t, err)
		require.Nil(t, f)
	})

	t.Run("one file per day", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		cfg := Config{LogDir: dir}
		day := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)

		f, err := cfg.OpenLogFile(day)
		require.NoError(t, err)
		_, err = f.WriteString("first\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		f, err = cfg.OpenLogFile(day.Add(30 * time.Minute))
		require.NoError(t, err)
		_, err = f.WriteString("second\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		data, err := os.ReadFile(filepath.Join(dir, "monopoly.2024-03-09.log"))
		require.NoError(t, err)
		require.Equal(t, "first\nsecond\n", string(data), "Entries are appended")

		f, err = cfg.OpenLogFile(day.Add(2 * time.Hour))
		require.NoError(t, err)
		require.NoError(t, f.Close())
		require.FileExists(t, filepath.Join(dir, "monopoly.2024-03-10.log"))
	})
}
