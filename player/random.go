package player

import (
	"monopoly/game"

	"golang.org/x/exp/rand"
)

// Random makes seeded coin-flip decisions. It is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) DecidePurchase(*game.GameState, int, int) bool {
	return r.rng.Intn(2) == 0
}

// DecideBid withdraws a third of the time and otherwise raises by up to two increments.
func (r *Random) DecideBid(gs *game.GameState, player, _, minBid int) (int, bool) {
	if r.rng.Intn(3) == 0 {
		return 0, false
	}
	bid := minBid + r.rng.Intn(3)*gs.Rules.AuctionIncrement()
	if bid > gs.Players[player].Cash {
		return 0, false
	}
	return bid, true
}

func (r *Random) DecideJailExit(_ *game.GameState, _ int, options []game.JailOption) game.JailOption {
	return options[r.rng.Intn(len(options))]
}
