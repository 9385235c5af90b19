package player

import (
	"monopoly/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *game.GameState {
	t.Helper()
	cfg, err := game.LoadConfig()
	require.NoError(t, err)
	g, err := game.NewGame(game.Setup{Config: cfg, Names: []string{"a", "b"}})
	require.NoError(t, err)
	return g.State
}

func TestNew(t *testing.T) {
	for _, strategy := range []string{ThresholdStrategy, RandomStrategy, PassiveStrategy} {
		d, err := New(strategy, 1, 100)
		require.NoError(t, err)
		require.NotNil(t, d, strategy)
	}
	_, err := New("clairvoyant", 1, 100)
	require.Error(t, err)
}

func TestScripted(t *testing.T) {
	gs := newState(t)
	s := &Scripted{Purchase: true, Bids: []int{10, 20}, Jail: game.UseCard, Builds: []int{6}}

	require.True(t, s.DecidePurchase(gs, 0, 6))
	bid, ok := s.DecideBid(gs, 0, 6, 10)
	require.True(t, ok)
	require.Equal(t, 10, bid)
	bid, _ = s.DecideBid(gs, 0, 6, 20)
	require.Equal(t, 20, bid)
	_, ok = s.DecideBid(gs, 0, 6, 30)
	require.False(t, ok, "Scripted should withdraw once its bids run out")

	require.Equal(t, game.RollForDoubles, s.DecideJailExit(gs, 0, []game.JailOption{game.RollForDoubles}),
		"Unavailable option should fall back to rolling")
	require.Equal(t, game.UseCard, s.DecideJailExit(gs, 0, []game.JailOption{game.RollForDoubles, game.UseCard}))

	pos, ok := s.DecideBuild(gs, 0)
	require.True(t, ok)
	require.Equal(t, 6, pos)
	_, ok = s.DecideBuild(gs, 0)
	require.False(t, ok)
}

func TestThreshold(t *testing.T) {
	t.Run("buys and bids while keeping the reserve", func(t *testing.T) {
		gs := newState(t)
		th := NewThreshold(1350)

		require.True(t, th.DecidePurchase(gs, 0, 6), "100 leaves the reserve intact")
		require.False(t, th.DecidePurchase(gs, 0, 39), "400 would eat into the reserve")

		bid, ok := th.DecideBid(gs, 0, 6, 60)
		require.True(t, ok)
		require.Equal(t, 60, bid)
		_, ok = th.DecideBid(gs, 0, 6, 110)
		require.False(t, ok, "Threshold never bids above list price")
	})

	t.Run("prefers a card, then the fine", func(t *testing.T) {
		gs := newState(t)
		th := NewThreshold(0)
		all := []game.JailOption{game.RollForDoubles, game.PayFine, game.UseCard}
		require.Equal(t, game.UseCard, th.DecideJailExit(gs, 0, all))
		require.Equal(t, game.PayFine, th.DecideJailExit(gs, 0, all[:2]))

		poor := NewThreshold(1480)
		require.Equal(t, game.RollForDoubles, poor.DecideJailExit(gs, 0, all[:2]))
	})

	t.Run("builds evenly on monopolies", func(t *testing.T) {
		gs := newState(t)
		th := NewThreshold(0)
		_, ok := th.DecideBuild(gs, 0)
		require.False(t, ok, "Nothing to build on without properties")

		for _, pos := range []int{6, 8, 9} {
			gs.Ledger[pos].Owner = 0
			gs.Players[0].Properties = append(gs.Players[0].Properties, pos)
		}
		gs.Ledger[6].Buildings = 1
		pos, ok := th.DecideBuild(gs, 0)
		require.True(t, ok)
		require.Equal(t, 8, pos)
	})
}

func TestRandom(t *testing.T) {
	gs := newState(t)
	a, b := NewRandom(42), NewRandom(42)
	options := []game.JailOption{game.RollForDoubles, game.PayFine}

	for i := 0; i < 20; i++ {
		require.Equal(t, a.DecidePurchase(gs, 0, 6), b.DecidePurchase(gs, 0, 6), "Same seed should decide the same")

		bidA, okA := a.DecideBid(gs, 0, 6, 10)
		bidB, okB := b.DecideBid(gs, 0, 6, 10)
		require.Equal(t, okA, okB)
		require.Equal(t, bidA, bidB)
		if okA {
			require.GreaterOrEqual(t, bidA, 10)
			require.LessOrEqual(t, bidA, 30)
		}

		require.Contains(t, options, a.DecideJailExit(gs, 0, options))
		b.DecideJailExit(gs, 0, options)
	}
}
