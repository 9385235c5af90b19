package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStateCopy(t *testing.T) {
	g := newTestGame(t, nil, &stub{}, &stub{})
	give(g, 0, 6)
	gs := g.State

	c := gs.Copy()
	c.Players[0].Cash = 0
	c.Players[0].Properties = append(c.Players[0].Properties, 8)
	c.Ledger[6].Buildings = 3
	c.Chance.Draw()

	require.Equal(t, 1500, gs.Players[0].Cash)
	require.Equal(t, []int{6}, gs.Players[0].Properties)
	require.Equal(t, 0, gs.Ledger[6].Buildings)
	require.Equal(t, 0, gs.Chance.Next)
	require.Same(t, gs.Config, c.Config, "Config is shared")
}

func TestNextPlayer(t *testing.T) {
	g := newTestGame(t, nil, &stub{}, &stub{}, &stub{})
	gs := g.State

	require.Equal(t, 1, gs.NextPlayer())
	gs.Players[1].Bankrupt = true
	require.Equal(t, 2, gs.NextPlayer(), "Bankrupt players are skipped")
	gs.Current = 2
	require.Equal(t, 0, gs.NextPlayer())
	require.Equal(t, []int{0, 2}, gs.Active())
	require.Equal(t, []int{2, 0}, gs.rotation(2))
}
