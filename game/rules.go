package game

// Rules holds the tunable constants of the economy. The board and card data live in Config.
type Rules interface {
	StartingCash() int
	GoBonus() int
	JailFine() int
	MaxJailTurns() int
	MaxDoubles() int
	MortgageInterestPercent() int
	AuctionMinimumBid() int
	AuctionIncrement() int
	HouseSupply() int
	HotelSupply() int
}
