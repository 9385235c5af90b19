package engine

import (
	"fmt"
	"monopoly/experiments/metrics"
	"monopoly/game"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxTurns bounds Run when the caller passes a non-positive limit.
const MaxTurns = 1000

type Option func(e *Engine)

// Engine owns one game and serializes every call made against it.
type Engine struct {
	ID uuid.UUID

	mu      sync.Mutex
	game    *game.Game
	seed    uint64
	dice    game.Dice
	rules   game.Rules
	config  *game.Config
	logger  zerolog.Logger
	metrics metrics.Collector
	ordered bool
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

func WithDice(dice game.Dice) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithConfig(config *game.Config) Option {
	return func(e *Engine) {
		if config != nil {
			e.config = config
		}
	}
}

// WithMetrics records per-turn metrics into c.
func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// WithRolledOrder picks the starting player by an opening roll instead of seat order.
func WithRolledOrder() Option {
	return func(e *Engine) {
		e.ordered = true
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a game for the named players. deciders may be nil or hold one entry per player.
func New(names []string, deciders []game.Decider, options ...Option) (*Engine, error) {
	e := &Engine{ // Default values
		ID:      uuid.New(),
		seed:    uint64(time.Now().UnixNano()),
		rules:   game.NewStandardRules(),
		logger:  log.Logger,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.config == nil {
		config, err := game.LoadConfig()
		if err != nil {
			return nil, err
		}
		e.config = config
	}

	g, err := game.NewGame(game.Setup{
		Config:    e.config,
		Rules:     e.rules,
		Names:     names,
		Deciders:  deciders,
		Dice:      e.dice,
		Rand:      rand.New(rand.NewSource(e.seed)),
		RollOrder: e.ordered,
	})
	if err != nil {
		return nil, err
	}
	e.game = g
	e.logger = e.logger.With().Str("game", e.ID.String()).Logger()
	e.logger.Info().Strs("players", names).Uint64("seed", e.seed).Msg("game created")
	e.logEvents(g.Drain())
	return e, nil
}

// AdvanceTurn plays the current player's turn and reports what happened.
func (e *Engine) AdvanceTurn() (game.TurnOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.game.TakeTurn()
	if err != nil {
		return out, err
	}
	e.logEvents(out.Events)
	e.metrics.AddTurn(out, e.game.State)
	return out, nil
}

// Run plays turns until a winner is found or maxTurns turns have been played.
func (e *Engine) Run(maxTurns int) (winner int, finished bool) {
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}
	starting := e.Snapshot().Current
	e.metrics.Start(starting)
	e.logger.Info().Msgf("player %d is starting", starting)

	for turn := 0; turn < maxTurns; turn++ {
		if _, err := e.AdvanceTurn(); err != nil {
			break
		}
		if e.IsFinished() {
			break
		}
	}

	winner, finished = e.Winner()
	if finished {
		e.logger.Info().Msgf("game over, winner: player %d", winner)
	} else {
		e.logger.Info().Msgf("stopped after %d turns without a winner", maxTurns)
	}
	return winner, finished
}

func (e *Engine) IsFinished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.IsFinished()
}

func (e *Engine) Winner() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Winner()
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.State.Copy()
}

// Buy purchases an unowned property at list price for player.
func (e *Engine) Buy(player, pos int) error {
	return e.act(func(g *game.Game) error {
		return g.Buy(player, pos)
	})
}

func (e *Engine) BuildUp(player, pos int) error {
	return e.owned(player, pos, (*game.Game).BuildUp)
}

func (e *Engine) SellDown(player, pos int) error {
	return e.owned(player, pos, (*game.Game).SellDown)
}

func (e *Engine) Mortgage(player, pos int) error {
	return e.owned(player, pos, (*game.Game).Mortgage)
}

func (e *Engine) Unmortgage(player, pos int) error {
	return e.owned(player, pos, (*game.Game).Unmortgage)
}

// owned runs a ledger action on pos after checking that player owns it.
func (e *Engine) owned(player, pos int, action func(*game.Game, int) error) error {
	return e.act(func(g *game.Game) error {
		gs := g.State
		if player < 0 || player >= len(gs.Players) || !gs.Players[player].Owns(pos) {
			return &game.Error{Code: game.CodeIllegalAction, Message: fmt.Sprintf("player %d does not own cell %d", player, pos)}
		}
		return action(g, pos)
	})
}

func (e *Engine) act(action func(*game.Game) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.game.IsFinished() {
		return game.ErrGameOver
	}
	err := action(e.game)
	e.logEvents(e.game.Drain())
	return err
}

func (e *Engine) logEvents(events []game.Event) {
	for _, ev := range events {
		level := zerolog.DebugLevel
		switch ev.Kind {
		case game.BankruptEvent, game.GameOverEvent:
			level = zerolog.InfoLevel
		}
		entry := e.logger.WithLevel(level).
			Str("event", ev.Kind.String()).
			Int("player", ev.Player).
			Int("amount", ev.Amount)
		if ev.Cell >= 0 {
			entry = entry.Str("cell", e.config.Cell(ev.Cell).Name)
		}
		if ev.Text != "" {
			entry = entry.Str("text", ev.Text)
		}
		entry.Send()
	}
}
