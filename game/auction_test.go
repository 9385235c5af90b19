package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuction(t *testing.T) {
	t.Run("highest bidder wins after the others withdraw", func(t *testing.T) {
		g := newTestGame(t, nil, &stub{bids: []int{10, 30}}, &stub{bids: []int{20, 40}}, &stub{})
		winner, price, err := g.Auction(39)
		require.NoError(t, err)
		require.Equal(t, 1, winner)
		require.Equal(t, 40, price)
		require.Equal(t, 1460, g.State.Players[1].Cash)
		require.Equal(t, 1500, g.State.Players[0].Cash, "Losing bidders pay nothing")
		require.Equal(t, Holding{Owner: 1}, g.State.Holding(39))

		events := kinds(g.Drain())
		require.Equal(t, AuctionWonEvent, events[len(events)-1])
	})

	t.Run("nobody bids", func(t *testing.T) {
		g := newTestGame(t, nil, &stub{}, &stub{})
		winner, price, err := g.Auction(39)
		require.NoError(t, err)
		require.Equal(t, -1, winner)
		require.Equal(t, 0, price)
		require.Equal(t, Unowned, g.State.Holding(39).Status())
		require.Contains(t, kinds(g.Drain()), AuctionNoBidsEvent)
	})

	t.Run("underbids and unaffordable bids withdraw", func(t *testing.T) {
		g := newTestGame(t, nil, &stub{bids: []int{5}}, &stub{bids: []int{2000}}, &stub{bids: []int{15}})
		winner, price, err := g.Auction(39)
		require.NoError(t, err)
		require.Equal(t, 2, winner)
		require.Equal(t, 15, price)
	})

	t.Run("only unowned properties", func(t *testing.T) {
		g := newTestGame(t, nil, &stub{}, &stub{})
		give(g, 0, 39)
		_, _, err := g.Auction(39)
		require.ErrorIs(t, err, ErrIllegalAction)
		_, _, err = g.Auction(0)
		require.ErrorIs(t, err, ErrIllegalAction)
	})
}
