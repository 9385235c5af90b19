package game

type StandardRules struct {
	InitialCash     int
	PassGoBonus     int
	JailExitFine    int
	JailTurnLimit   int
	DoublesLimit    int
	InterestPercent int
	MinimumBid      int
	BidIncrement    int
	Houses          int
	Hotels          int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		InitialCash:     1500,
		PassGoBonus:     200,
		JailExitFine:    50,
		JailTurnLimit:   3,
		DoublesLimit:    3,
		InterestPercent: 10,
		MinimumBid:      10,
		BidIncrement:    10,
		Houses:          32,
		Hotels:          12,
	}
}

// Validate rejects values that would break the bounded loops of the engine.
func (sr *StandardRules) Validate() error {
	switch {
	case sr.InitialCash < 0:
		return invalidConfig("starting cash must not be negative")
	case sr.PassGoBonus < 0, sr.JailExitFine < 0, sr.InterestPercent < 0:
		return invalidConfig("bonus, fine and interest must not be negative")
	case sr.JailTurnLimit <= 0:
		return invalidConfig("jail turn limit must be positive")
	case sr.DoublesLimit <= 0:
		return invalidConfig("doubles limit must be positive")
	case sr.MinimumBid <= 0, sr.BidIncrement <= 0:
		return invalidConfig("auction bids must be positive")
	case sr.Houses < 0, sr.Hotels < 0:
		return invalidConfig("building supply must not be negative")
	}
	return nil
}

func (sr *StandardRules) StartingCash() int { return sr.InitialCash }

func (sr *StandardRules) GoBonus() int { return sr.PassGoBonus }

func (sr *StandardRules) JailFine() int { return sr.JailExitFine }

func (sr *StandardRules) MaxJailTurns() int { return sr.JailTurnLimit }

func (sr *StandardRules) MaxDoubles() int { return sr.DoublesLimit }

func (sr *StandardRules) MortgageInterestPercent() int { return sr.InterestPercent }

func (sr *StandardRules) AuctionMinimumBid() int { return sr.MinimumBid }

func (sr *StandardRules) AuctionIncrement() int { return sr.BidIncrement }

func (sr *StandardRules) HouseSupply() int { return sr.Houses }

func (sr *StandardRules) HotelSupply() int { return sr.Hotels }
