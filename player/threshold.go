package player

import (
	"monopoly/game"
	"monopoly/utils"
)

// Threshold spends freely as long as it keeps Reserve in cash.
type Threshold struct {
	Reserve int
}

func NewThreshold(reserve int) *Threshold {
	return &Threshold{Reserve: max(reserve, 0)}
}

func (t *Threshold) spare(gs *game.GameState, player int) int {
	return gs.Players[player].Cash - t.Reserve
}

func (t *Threshold) DecidePurchase(gs *game.GameState, player, pos int) bool {
	return t.spare(gs, player) >= gs.Config.Cell(pos).Price
}

// DecideBid bids the minimum while it stays under the list price and the reserve.
func (t *Threshold) DecideBid(gs *game.GameState, player, pos, minBid int) (int, bool) {
	limit := min(gs.Config.Cell(pos).Price, t.spare(gs, player))
	if minBid > limit {
		return 0, false
	}
	return minBid, true
}

func (t *Threshold) DecideJailExit(gs *game.GameState, player int, options []game.JailOption) game.JailOption {
	if utils.FindIndex(options, game.UseCard) >= 0 {
		return game.UseCard
	}
	if utils.FindIndex(options, game.PayFine) >= 0 && t.spare(gs, player) >= gs.Rules.JailFine() {
		return game.PayFine
	}
	return game.RollForDoubles
}

// DecideBuild picks the least developed buildable street it can afford.
func (t *Threshold) DecideBuild(gs *game.GameState, player int) (int, bool) {
	best, level := -1, game.Hotel
	for _, pos := range gs.Players[player].Properties {
		h := gs.Holding(pos)
		if h.Buildings >= level || t.spare(gs, player) < gs.Config.Cell(pos).BuildingCost {
			continue
		}
		if gs.CanBuild(pos) {
			best, level = pos, h.Buildings
		}
	}
	return best, best >= 0
}
