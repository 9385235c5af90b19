package metrics

import (
	"monopoly/game"
	"time"
)

// StrategyConfig identifies one decider setup taking part in an experiment.
type StrategyConfig struct {
	ID       int
	Strategy string
	Reserve  int
}

type TurnMetric struct {
	Step       int
	Player     int // Player ID
	Events     int
	Cash       int // Cash after the turn
	Properties int // Properties held after the turn
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, -1 when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
}

type Collector interface {
	Start(startingPlayer int)
	AddTurn(out game.TurnOutcome, gs *game.GameState)
	Complete(winner int) (GameMetric, []TurnMetric)
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	turns          []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.turns = nil
}

func (m *collector) AddTurn(out game.TurnOutcome, gs *game.GameState) {
	p := gs.Players[out.Player]
	m.turns = append(m.turns, TurnMetric{
		Step:       len(m.turns) + 1,
		Player:     out.Player,
		Events:     len(out.Events),
		Cash:       p.Cash,
		Properties: len(p.Properties),
	})
}

func (m *collector) Complete(winner int) (GameMetric, []TurnMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalTurns:     len(m.turns),
	}, m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int)                         {}
func (m *dummyCollector) AddTurn(out game.TurnOutcome, gs *game.GameState) {}
func (m *dummyCollector) Complete(winner int) (GameMetric, []TurnMetric) {
	return GameMetric{Winner: winner}, nil
}
