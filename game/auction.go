package game

// Auction sells an unowned property to the highest bidder among the active players, with the
// current player bidding first. A winner of -1 means nobody bid and the property stays unowned.
func (g *Game) Auction(pos int) (winner, price int, err error) {
	gs := g.State
	if !gs.Config.IsProperty(pos) {
		return -1, 0, illegal("cell %d is not a property", pos)
	}
	if gs.Ledger[pos].Owner >= 0 {
		return -1, 0, illegal("%s is already owned", gs.Config.Board[pos].Name)
	}
	winner, price = g.auction(pos, gs.Current)
	return winner, price, nil
}

// auction runs an open ascending auction. Bidders are asked in seat order starting from
// first; a bidder who cannot or will not beat the high bid by the increment withdraws for
// good. It ends when one bidder is left holding the high bid, or nobody is left.
func (g *Game) auction(pos, first int) (int, int) {
	gs := g.State
	active := gs.rotation(first)
	high, price := -1, 0

	for i := 0; len(active) > 0; {
		if high >= 0 && len(active) == 1 {
			break
		}
		if i >= len(active) {
			i = 0
		}
		bidder := active[i]
		if bidder == high {
			i++
			continue
		}

		minBid := gs.Rules.AuctionMinimumBid()
		if high >= 0 {
			minBid = price + gs.Rules.AuctionIncrement()
		}
		cash := gs.Players[bidder].Cash
		bid, ok := 0, false
		if cash >= minBid {
			bid, ok = g.deciders[bidder].DecideBid(gs, bidder, pos, minBid)
		}
		if !ok || bid < minBid || bid > cash {
			active = append(active[:i], active[i+1:]...)
			g.record(WithdrewEvent, bidder, BankID, pos, 0)
			continue
		}
		high, price = bidder, bid
		g.record(BidEvent, bidder, BankID, pos, bid)
		i++
	}

	if high < 0 {
		g.record(AuctionNoBidsEvent, -1, BankID, pos, 0)
		return -1, 0
	}
	gs.Players[high].Cash -= price
	g.assign(high, pos)
	g.record(AuctionWonEvent, high, BankID, pos, price)
	return high, price
}
