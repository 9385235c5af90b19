package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// stub answers every choice point from fixed settings. Bids are consumed in order;
// the stub withdraws once they run out.
type stub struct {
	purchase bool
	bids     []int
	jail     JailOption
}

func (s *stub) DecidePurchase(*GameState, int, int) bool { return s.purchase }

func (s *stub) DecideBid(*GameState, int, int, int) (int, bool) {
	if len(s.bids) == 0 {
		return 0, false
	}
	bid := s.bids[0]
	s.bids = s.bids[1:]
	return bid, true
}

func (s *stub) DecideJailExit(*GameState, int, []JailOption) JailOption { return s.jail }

// builder builds on the listed positions in order, one level per call.
type builder struct {
	stub
	plan []int
}

func (b *builder) DecideBuild(*GameState, int) (int, bool) {
	if len(b.plan) == 0 {
		return 0, false
	}
	pos := b.plan[0]
	b.plan = b.plan[1:]
	return pos, true
}

func newTestGame(t *testing.T, dice Dice, deciders ...Decider) *Game {
	t.Helper()
	cfg, err := LoadConfig()
	require.NoError(t, err)
	names := make([]string, len(deciders))
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i+1)
	}
	g, err := NewGame(Setup{
		Config:   cfg,
		Names:    names,
		Deciders: deciders,
		Dice:     dice,
		Rand:     rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return g
}

// quietDecks replaces both decks with a single card paying 10.
func quietDecks(g *Game) {
	cards := []Card{{Text: "Consultancy fee", Effect: Effect{Kind: CreditEffect, Amount: 10}}}
	g.State.Chance = NewDeck(cards, nil)
	g.State.CommunityChest = NewDeck(cards, nil)
}

func give(g *Game, player int, positions ...int) {
	for _, pos := range positions {
		g.assign(player, pos)
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestNewGame(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	t.Run("deals starting cash and empty ledger", func(t *testing.T) {
		g, err := NewGame(Setup{Config: cfg, Names: []string{"a", "b", "c"}})
		require.NoError(t, err)
		gs := g.State
		require.Len(t, gs.Players, 3)
		for _, p := range gs.Players {
			require.Equal(t, 1500, p.Cash, "Every player should start with the starting cash")
			require.Equal(t, 0, p.Position, "Every player should start on Go")
			require.Equal(t, Free, p.Jail)
		}
		for pos := range gs.Ledger {
			require.Equal(t, Unowned, gs.Holding(pos).Status(), "No property should be owned at setup")
		}
		require.Equal(t, 32, gs.HousesLeft)
		require.Equal(t, 12, gs.HotelsLeft)
		require.Equal(t, 0, gs.Kitty.Balance)
		require.Len(t, gs.Chance.Cards, NumDeck)
		require.Len(t, gs.CommunityChest.Cards, NumDeck)
		require.False(t, g.IsFinished())
	})

	t.Run("rejects player counts outside 2 to 6", func(t *testing.T) {
		for _, names := range [][]string{{"solo"}, {"1", "2", "3", "4", "5", "6", "7"}} {
			_, err := NewGame(Setup{Config: cfg, Names: names})
			require.ErrorIs(t, err, ErrInvalidPlayerCount)
		}
	})

	t.Run("rejects a missing configuration", func(t *testing.T) {
		_, err := NewGame(Setup{Names: []string{"a", "b"}})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects mismatched deciders", func(t *testing.T) {
		_, err := NewGame(Setup{Config: cfg, Names: []string{"a", "b"}, Deciders: []Decider{&stub{}}})
		require.ErrorIs(t, err, ErrIllegalAction)
	})

	t.Run("same seed deals same decks", func(t *testing.T) {
		a, err := NewGame(Setup{Config: cfg, Names: []string{"a", "b"}, Rand: rand.New(rand.NewSource(7))})
		require.NoError(t, err)
		b, err := NewGame(Setup{Config: cfg, Names: []string{"a", "b"}, Rand: rand.New(rand.NewSource(7))})
		require.NoError(t, err)
		require.Equal(t, a.State.Chance.Cards, b.State.Chance.Cards)
		require.Equal(t, a.State.CommunityChest.Cards, b.State.CommunityChest.Cards)
	})
}

func TestRollForOrder(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	t.Run("highest total starts and ties roll again", func(t *testing.T) {
		// P2 and P3 tie on 9, then P2 wins the roll-off 3 to 2.
		dice := NewScriptedDice([2]int{3, 4}, [2]int{5, 4}, [2]int{6, 3}, [2]int{2, 1}, [2]int{1, 1})
		g, err := NewGame(Setup{Config: cfg, Names: []string{"P1", "P2", "P3"}, Dice: dice, RollOrder: true})
		require.NoError(t, err)

		require.Equal(t, 1, g.State.Current)
		require.Equal(t, 0, dice.Remaining())
		require.Equal(t, [2]int{}, g.State.LastRoll)

		events := g.Drain()
		require.Len(t, events, 5)
		seats := make([]int, len(events))
		for i, ev := range events {
			require.Equal(t, RolledEvent, ev.Kind)
			seats[i] = ev.Player
		}
		require.Equal(t, []int{0, 1, 2, 1, 2}, seats)
		require.Equal(t, 9, events[2].Amount)
	})

	t.Run("seat order is kept without the opening roll", func(t *testing.T) {
		dice := NewScriptedDice([2]int{1, 2}, [2]int{6, 6})
		g, err := NewGame(Setup{Config: cfg, Names: []string{"P1", "P2"}, Dice: dice})
		require.NoError(t, err)
		require.Equal(t, 0, g.State.Current)
		require.Equal(t, 2, dice.Remaining())
		require.Empty(t, g.Drain())
	})
}
