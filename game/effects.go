package game

func (g *Game) drawCard(player int, deck *Deck) {
	card, ok := deck.Draw()
	if !ok {
		return
	}
	g.emit(Event{Kind: CardDrawnEvent, Player: player, Other: BankID, Cell: g.State.Players[player].Position, Text: card.Text})
	g.applyEffect(player, card.Effect)
}

// applyEffect interprets a card effect for the player who drew it.
func (g *Game) applyEffect(player int, e Effect) {
	gs := g.State

	switch e.Kind {
	case CreditEffect:
		g.credit(player, e.Amount)
		g.record(ReceivedEvent, player, BankID, -1, e.Amount)
	case DebitEffect:
		g.settle(player, e.Amount, ToKitty, PaidEvent)
	case RelocateEffect:
		g.moveTo(player, e.Cell, true)
	case MoveEffect:
		if e.Spaces >= 0 {
			g.advance(player, e.Spaces)
			return
		}
		n := len(gs.Config.Board)
		g.moveTo(player, ((gs.Players[player].Position+e.Spaces)%n+n)%n, false)
	case NearestEffect:
		g.moveTo(player, gs.nearest(gs.Players[player].Position, e.Group), true)
	case GoToJailEffect:
		g.sendToJail(player)
	case CollectEachEffect:
		for _, other := range gs.rotation(player + 1) {
			if other == player {
				continue
			}
			g.settle(other, e.Amount, ToPlayer(player), PaidEvent)
		}
	case PayEachEffect:
		for _, other := range gs.rotation(player + 1) {
			if other == player {
				continue
			}
			if !g.settle(player, e.Amount, ToPlayer(other), PaidEvent) {
				return
			}
		}
	case RepairsEffect:
		houses, hotels := gs.Buildings(player)
		g.settle(player, houses*e.PerHouse+hotels*e.PerHotel, ToKitty, PaidEvent)
	case JailCardEffect:
		gs.Players[player].JailCards++
	}
}

// nearest returns the first cell of group strictly ahead of pos, wrapping past Go.
func (gs *GameState) nearest(pos int, group Group) int {
	cells := gs.Config.GroupCells(group)
	for _, c := range cells {
		if c > pos {
			return c
		}
	}
	return cells[0]
}
