// meta/meta.go
package meta

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"monopoly/game"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the run settings read from MONOPOLY_* environment variables.
type Config struct {
	Players   []string `env:"MONOPOLY_PLAYERS" envDefault:"Alice,Bob,Carol,Dave" envSeparator:","`
	Strategy  string   `env:"MONOPOLY_STRATEGY" envDefault:"threshold"`
	Reserve   int      `env:"MONOPOLY_RESERVE" envDefault:"200"`
	Seed      uint64   `env:"MONOPOLY_SEED" envDefault:"0"` // 0 picks a random seed
	MaxTurns  int      `env:"MONOPOLY_MAX_TURNS" envDefault:"300"`
	LogLevel  string   `env:"MONOPOLY_LOG_LEVEL" envDefault:"info"`
	LogPretty bool     `env:"MONOPOLY_LOG_PRETTY" envDefault:"true"`
	LogDir    string   `env:"MONOPOLY_LOG_DIR"` // Empty disables the log file

	// A positive Games runs a strategy tournament instead of a single game.
	Games         int    `env:"MONOPOLY_GAMES" envDefault:"0"`
	ExperimentDir string `env:"MONOPOLY_EXPERIMENT_DIR" envDefault:"experiments"`

	StartingCash    int `env:"MONOPOLY_STARTING_CASH" envDefault:"1500"`
	GoBonus         int `env:"MONOPOLY_GO_BONUS" envDefault:"200"`
	JailFine        int `env:"MONOPOLY_JAIL_FINE" envDefault:"50"`
	MaxJailTurns    int `env:"MONOPOLY_MAX_JAIL_TURNS" envDefault:"3"`
	MaxDoubles      int `env:"MONOPOLY_MAX_DOUBLES" envDefault:"3"`
	InterestPercent int `env:"MONOPOLY_MORTGAGE_INTEREST" envDefault:"10"`
	MinimumBid      int `env:"MONOPOLY_AUCTION_MINIMUM_BID" envDefault:"10"`
	BidIncrement    int `env:"MONOPOLY_AUCTION_INCREMENT" envDefault:"10"`
	Houses          int `env:"MONOPOLY_HOUSES" envDefault:"32"`
	Hotels          int `env:"MONOPOLY_HOTELS" envDefault:"12"`
}

// Load parses the environment, validates the rule overrides and resolves a zero seed.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.Players) < game.MinPlayers || len(cfg.Players) > game.MaxPlayers {
		return Config{}, &game.Error{Code: game.CodeInvalidPlayerCount, Message: fmt.Sprintf("MONOPOLY_PLAYERS lists %d players", len(cfg.Players))}
	}
	if err := cfg.Rules().Validate(); err != nil {
		return Config{}, err
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("parse log level: %w", err)
	}
	if cfg.Seed == 0 {
		seed, err := NewSeed()
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// Rules builds the rule set described by the config.
func (c Config) Rules() *game.StandardRules {
	return &game.StandardRules{
		InitialCash:     c.StartingCash,
		PassGoBonus:     c.GoBonus,
		JailExitFine:    c.JailFine,
		JailTurnLimit:   c.MaxJailTurns,
		DoublesLimit:    c.MaxDoubles,
		InterestPercent: c.InterestPercent,
		MinimumBid:      c.MinimumBid,
		BidIncrement:    c.BidIncrement,
		Houses:          c.Houses,
		Hotels:          c.Hotels,
	}
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// OpenLogFile appends to the log file for the day of now under LogDir, creating it if needed.
// It returns nil when LogDir is empty.
func (c Config) OpenLogFile(now time.Time) (*os.File, error) {
	if c.LogDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(c.LogDir, "monopoly."+now.Format(time.DateOnly)+".log")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// NewSeed generates a non-zero seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]) | 1, nil
}
