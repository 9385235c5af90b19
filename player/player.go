package player

import (
	"fmt"
	"monopoly/game"
	"monopoly/utils"
)

const (
	ThresholdStrategy = "threshold"
	RandomStrategy    = "random"
	PassiveStrategy   = "passive"
)

// New builds a decider for the named strategy. seed drives the random strategy and
// reserve is the cash the threshold strategy keeps back.
func New(strategy string, seed uint64, reserve int) (game.Decider, error) {
	switch strategy {
	case ThresholdStrategy:
		return NewThreshold(reserve), nil
	case RandomStrategy:
		return NewRandom(seed), nil
	case PassiveStrategy:
		return &Scripted{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// Scripted answers every choice point with fixed settings. Bids and builds are consumed in
// order; once they run out it withdraws and stops building.
type Scripted struct {
	Purchase bool
	Bids     []int
	Jail     game.JailOption
	Builds   []int
}

func (s *Scripted) DecidePurchase(*game.GameState, int, int) bool {
	return s.Purchase
}

func (s *Scripted) DecideBid(*game.GameState, int, int, int) (int, bool) {
	if len(s.Bids) == 0 {
		return 0, false
	}
	bid := s.Bids[0]
	s.Bids = s.Bids[1:]
	return bid, true
}

func (s *Scripted) DecideJailExit(_ *game.GameState, _ int, options []game.JailOption) game.JailOption {
	if utils.FindIndex(options, s.Jail) < 0 {
		return game.RollForDoubles
	}
	return s.Jail
}

func (s *Scripted) DecideBuild(*game.GameState, int) (int, bool) {
	if len(s.Builds) == 0 {
		return 0, false
	}
	pos := s.Builds[0]
	s.Builds = s.Builds[1:]
	return pos, true
}
