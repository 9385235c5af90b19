package game

import "errors"

// Payee receives a settled obligation: a player ID or KittyID.
type Payee int

const ToKitty Payee = KittyID

func ToPlayer(id int) Payee { return Payee(id) }

func (p Payee) isPlayer() bool { return p >= 0 }

// Settle makes player pay amount to payee. When cash does not cover it, buildings are sold
// and then properties mortgaged until it does; if that is not enough the player goes
// bankrupt. It reports whether the player is still solvent.
func (g *Game) Settle(player, amount int, payee Payee) (bool, error) {
	if err := g.checkPlayer(player); err != nil {
		return false, err
	}
	if amount < 0 {
		return false, illegal("cannot settle a negative amount")
	}
	if payee.isPlayer() {
		if err := g.checkPlayer(int(payee)); err != nil {
			return false, err
		}
		if int(payee) == player {
			return false, illegal("player cannot pay itself")
		}
	} else if payee != ToKitty {
		return false, illegal("unknown payee %d", payee)
	}
	return g.settle(player, amount, payee, PaidEvent), nil
}

func (g *Game) settle(player, amount int, payee Payee, kind EventKind) bool {
	if amount <= 0 {
		return true
	}
	if err := g.debit(player, amount); err != nil {
		if !errors.Is(err, ErrInsufficientFunds) || !g.liquidate(player, amount) {
			g.declareBankruptcy(player, payee)
			return false
		}
		g.State.Players[player].Cash -= amount
	}

	if payee.isPlayer() {
		g.credit(int(payee), amount)
	} else {
		g.State.Kitty.Deposit(amount)
	}
	g.emit(Event{Kind: kind, Player: player, Other: int(payee), Cell: g.State.Players[player].Position, Amount: amount})
	return true
}

// liquidate raises cash until it covers amount: one building level at a time across the
// developed properties, then mortgages in board order.
func (g *Game) liquidate(player, amount int) bool {
	p := &g.State.Players[player]
	for p.Cash < amount {
		if g.sellRound(player, amount) {
			continue
		}
		pos, ok := g.nextUnmortgaged(player)
		if !ok {
			return false
		}
		g.mortgage(pos)
	}
	return true
}

// sellRound sells one level from each developed property, stopping once amount is covered.
func (g *Game) sellRound(player, amount int) bool {
	gs := g.State
	sold := false
	for _, pos := range gs.Players[player].Properties {
		if gs.Ledger[pos].Buildings == 0 {
			continue
		}
		g.sellDown(pos)
		sold = true
		if gs.Players[player].Cash >= amount {
			break
		}
	}
	return sold
}

func (g *Game) nextUnmortgaged(player int) (int, bool) {
	for _, pos := range g.State.Players[player].Properties {
		if !g.State.Ledger[pos].Mortgaged {
			return pos, true
		}
	}
	return 0, false
}

// declareBankruptcy removes player from the game. A player creditor takes the remaining
// cash, properties and jail cards; otherwise the cash goes to the kitty and the properties
// go back to the bank and are auctioned one by one.
func (g *Game) declareBankruptcy(player int, payee Payee) {
	gs := g.State
	p := &gs.Players[player]
	cash := p.Cash
	props := append([]int(nil), p.Properties...)

	p.Cash = 0
	p.Bankrupt = true
	p.Jail = Free
	p.Doubles = 0
	g.record(BankruptEvent, player, int(payee), -1, cash)

	if payee.isPlayer() {
		creditor := int(payee)
		g.credit(creditor, cash)
		for _, pos := range props {
			g.transfer(pos, creditor)
		}
		gs.Players[creditor].JailCards += p.JailCards
		p.JailCards = 0
		g.finish()
		return
	}

	gs.Kitty.Deposit(cash)
	p.JailCards = 0
	for _, pos := range props {
		g.release(pos)
	}
	if g.finish() {
		return
	}
	next := (player + 1) % len(gs.Players)
	for _, pos := range props {
		g.auction(pos, next)
	}
}
