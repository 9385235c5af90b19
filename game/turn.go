package game

import "monopoly/utils"

// TakeTurn plays one full turn for the current player, including repeat rolls for doubles,
// then passes the turn on. Events recorded before the turn are discarded from the outcome.
func (g *Game) TakeTurn() (TurnOutcome, error) {
	gs := g.State
	if gs.Finished() {
		return TurnOutcome{}, ErrGameOver
	}
	if gs.Players[gs.Current].Bankrupt {
		gs.Current = gs.NextPlayer()
	}
	g.events = nil

	player := gs.Current
	g.playTurn(player)
	if !gs.Finished() && !gs.Players[player].Bankrupt {
		g.develop(player)
	}

	gs.Players[player].Doubles = 0
	gs.Turn++
	if !gs.Finished() {
		gs.Current = gs.NextPlayer()
	}
	return TurnOutcome{
		Player:   player,
		Events:   g.Drain(),
		Finished: gs.Finished(),
		Winner:   gs.Won,
	}, nil
}

func (g *Game) playTurn(player int) {
	gs := g.State
	p := &gs.Players[player]

	if p.InJail() {
		released, moved := g.jailTurn(player)
		if !released {
			return
		}
		// Escaping on doubles keeps the roll going like any other double.
		if moved && (p.Doubles == 0 || g.turnOver(player)) {
			return
		}
	}

	for {
		d1, d2 := g.roll(player)
		if d1 == d2 {
			p.Doubles++
			if p.Doubles >= gs.Rules.MaxDoubles() {
				g.sendToJail(player)
				return
			}
		} else {
			p.Doubles = 0
		}

		g.advance(player, d1+d2)
		if g.turnOver(player) || d1 != d2 {
			return
		}
	}
}

func (g *Game) turnOver(player int) bool {
	p := &g.State.Players[player]
	return g.State.Finished() || p.Bankrupt || p.InJail()
}

// jailTurn resolves the start of a jailed turn. released reports whether the player left
// jail; moved reports whether the exit roll was already used to move.
func (g *Game) jailTurn(player int) (released, moved bool) {
	gs := g.State
	p := &gs.Players[player]
	fine := gs.Rules.JailFine()

	options := []JailOption{RollForDoubles}
	if p.Cash >= fine {
		options = append(options, PayFine)
	}
	if p.JailCards > 0 {
		options = append(options, UseCard)
	}
	choice := g.deciders[player].DecideJailExit(gs, player, options)
	if utils.FindIndex(options, choice) < 0 {
		choice = RollForDoubles
	}

	switch choice {
	case UseCard:
		p.JailCards--
		g.releaseFromJail(player, choice)
		return true, false
	case PayFine:
		g.settle(player, fine, ToKitty, PaidEvent)
		g.releaseFromJail(player, choice)
		return true, false
	}

	d1, d2 := g.roll(player)
	if d1 == d2 {
		g.releaseFromJail(player, RollForDoubles)
		p.Doubles = 1
		g.advance(player, d1+d2)
		return true, true
	}
	p.JailTurns++
	if p.JailTurns >= gs.Rules.MaxJailTurns() && p.Cash >= fine {
		g.settle(player, fine, ToKitty, PaidEvent)
		g.releaseFromJail(player, PayFine)
		g.advance(player, d1+d2)
		return true, true
	}
	g.emit(Event{Kind: StayedInJailEvent, Player: player, Other: BankID, Cell: p.Position, Amount: p.JailTurns})
	return false, false
}

func (g *Game) releaseFromJail(player int, how JailOption) {
	p := &g.State.Players[player]
	p.Jail = Visiting
	p.JailTurns = 0
	g.emit(Event{Kind: ReleasedEvent, Player: player, Other: BankID, Cell: p.Position, Text: how.String()})
}

func (g *Game) sendToJail(player int) {
	p := &g.State.Players[player]
	p.Position = g.State.Config.JailPosition()
	p.Jail = Jailed
	p.JailTurns = 0
	p.Doubles = 0
	g.record(JailedEvent, player, BankID, p.Position, 0)
}

func (g *Game) roll(player int) (int, int) {
	d1, d2 := g.dice.Roll()
	g.State.LastRoll = [2]int{d1, d2}
	g.emit(Event{Kind: RolledEvent, Player: player, Other: BankID, Cell: g.State.Players[player].Position, Amount: d1 + d2, Dice: [2]int{d1, d2}})
	return d1, d2
}

// advance moves player forward by steps and resolves the landed cell.
func (g *Game) advance(player, steps int) {
	from := g.State.Players[player].Position
	g.moveTo(player, (from+steps)%len(g.State.Config.Board), true)
}

// moveTo places player on pos and resolves it. With forward set, ending on a lower index
// than the start means Go was passed or landed on and the bonus is paid once.
func (g *Game) moveTo(player, pos int, forward bool) {
	gs := g.State
	p := &gs.Players[player]
	if forward && pos < p.Position {
		g.credit(player, gs.Rules.GoBonus())
		g.record(PassedGoEvent, player, BankID, 0, gs.Rules.GoBonus())
	}
	p.Position = pos
	if pos == gs.Config.JailPosition() {
		p.Jail = Visiting
	} else {
		p.Jail = Free
	}
	g.record(MovedEvent, player, BankID, pos, 0)
	g.land(player)
}

// land dispatches on the kind of cell the player stands on.
func (g *Game) land(player int) {
	gs := g.State
	pos := gs.Players[player].Position
	cell := gs.Config.Board[pos]

	switch cell.Kind {
	case GoCell, JailCell:
	case PropertyCell:
		g.landOnProperty(player, pos)
	case ChanceCell:
		g.drawCard(player, gs.Chance)
	case CommunityChestCell:
		g.drawCard(player, gs.CommunityChest)
	case TaxCell:
		g.settle(player, cell.Amount, ToKitty, TaxPaidEvent)
	case FreeParkingCell:
		amount := gs.Kitty.Collect()
		g.credit(player, amount)
		g.record(KittyCollectedEvent, player, KittyID, pos, amount)
	case GoToJailCell:
		g.sendToJail(player)
	}
}

func (g *Game) landOnProperty(player, pos int) {
	gs := g.State
	h := gs.Ledger[pos]

	switch {
	case h.Owner < 0:
		if gs.Players[player].Cash >= gs.Config.Board[pos].Price &&
			g.deciders[player].DecidePurchase(gs, player, pos) {
			if err := g.Buy(player, pos); err == nil {
				return
			}
		}
		g.auction(pos, player)
	case h.Owner == player, h.Mortgaged:
	default:
		rent := gs.Rent(pos, gs.LastRoll[0]+gs.LastRoll[1])
		g.settle(player, rent, ToPlayer(h.Owner), RentPaidEvent)
	}
}

// develop lets a Builder decider add buildings until it stops or asks for something illegal.
func (g *Game) develop(player int) {
	b, ok := g.deciders[player].(Builder)
	if !ok {
		return
	}
	for {
		pos, ok := b.DecideBuild(g.State, player)
		if !ok || !g.State.Config.IsProperty(pos) || g.State.Ledger[pos].Owner != player {
			return
		}
		if err := g.BuildUp(pos); err != nil {
			return
		}
	}
}
