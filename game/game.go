package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Setup collects what NewGame needs. Deciders, Dice and Rand are optional.
type Setup struct {
	Config   *Config
	Rules    Rules
	Names    []string
	Deciders []Decider // Indexed by player ID; nil entries decline everything
	Dice     Dice      // Defaults to uniform dice driven by Rand
	Rand     *rand.Rand

	// RollOrder has every player roll before the first turn. The highest total starts.
	RollOrder bool
}

// Game is the rules engine for one game: the state plus the collaborators that drive it.
type Game struct {
	State    *GameState
	dice     Dice
	deciders []Decider
	events   []Event
}

// NewGame validates the setup and deals the initial state. Decks are permuted once with Rand.
func NewGame(s Setup) (*Game, error) {
	if len(s.Names) < MinPlayers || len(s.Names) > MaxPlayers {
		return nil, &Error{Code: CodeInvalidPlayerCount, Message: "need between 2 and 6 players"}
	}
	if s.Config == nil {
		return nil, invalidConfig("missing board configuration")
	}
	if s.Rules == nil {
		s.Rules = NewStandardRules()
	}
	if s.Deciders != nil && len(s.Deciders) != len(s.Names) {
		return nil, illegal("got %d deciders for %d players", len(s.Deciders), len(s.Names))
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if s.Dice == nil {
		s.Dice = NewRandomDice(s.Rand)
	}

	g := &Game{
		State:    newGameState(s.Config, s.Rules, s.Names),
		dice:     s.Dice,
		deciders: make([]Decider, len(s.Names)),
	}
	for i := range g.deciders {
		g.deciders[i] = passive{}
		if s.Deciders != nil && s.Deciders[i] != nil {
			g.deciders[i] = s.Deciders[i]
		}
	}
	g.State.Chance = NewDeck(s.Config.Chance, s.Rand)
	g.State.CommunityChest = NewDeck(s.Config.CommunityChest, s.Rand)
	if s.RollOrder {
		g.State.Current = g.rollForOrder()
	}
	return g, nil
}

// rollForOrder has each player roll once and returns the seat with the highest total.
// Players tied for the lead roll again until one remains.
func (g *Game) rollForOrder() int {
	contenders := g.State.Active()
	for len(contenders) > 1 {
		best, leaders := 0, []int{}
		for _, player := range contenders {
			d1, d2 := g.roll(player)
			switch total := d1 + d2; {
			case total > best:
				best, leaders = total, []int{player}
			case total == best:
				leaders = append(leaders, player)
			}
		}
		contenders = leaders
	}
	g.State.LastRoll = [2]int{}
	return contenders[0]
}

func (g *Game) IsFinished() bool {
	return g.State.Finished()
}

func (g *Game) Winner() (int, bool) {
	return g.State.Winner()
}

// Drain returns and clears the events recorded since the last call.
func (g *Game) Drain() []Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) record(kind EventKind, player, other, cell, amount int) {
	g.emit(Event{Kind: kind, Player: player, Other: other, Cell: cell, Amount: amount})
}

func (g *Game) credit(player, amount int) {
	g.State.Players[player].Cash += amount
}

// debit takes amount from player only if it is covered outright.
func (g *Game) debit(player, amount int) error {
	p := &g.State.Players[player]
	if p.Cash < amount {
		return ErrInsufficientFunds
	}
	p.Cash -= amount
	return nil
}

func (g *Game) finish() bool {
	if g.State.Finished() {
		return true
	}
	if g.State.checkWinner() {
		g.record(GameOverEvent, g.State.Won, BankID, -1, g.State.Players[g.State.Won].Cash)
		return true
	}
	return false
}
