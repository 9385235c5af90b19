package game

// Buy transfers an unowned property to player at its list price.
func (g *Game) Buy(player, pos int) error {
	gs := g.State
	if err := g.checkPlayer(player); err != nil {
		return err
	}
	if !gs.Config.IsProperty(pos) {
		return illegal("cell %d is not a property", pos)
	}
	cell := gs.Config.Board[pos]
	if gs.Ledger[pos].Owner >= 0 {
		return illegal("%s is already owned", cell.Name)
	}
	if gs.Players[player].Cash < cell.Price {
		return illegal("%s cannot afford %s", gs.Players[player].Name, cell.Name)
	}

	gs.Players[player].Cash -= cell.Price
	g.assign(player, pos)
	g.record(PurchasedEvent, player, BankID, pos, cell.Price)
	return nil
}

// BuildUp adds one building level to a street. The owner must hold the whole unmortgaged
// group and the bank must have a house (or a hotel for the fifth level) left.
func (g *Game) BuildUp(pos int) error {
	gs := g.State
	h, cell, err := g.ownedProperty(pos)
	if err != nil {
		return err
	}
	if !cell.Group.Buildable() {
		return illegal("cannot build on %s", cell.Name)
	}
	if !gs.OwnsGroup(h.Owner, cell.Group) {
		return illegal("building on %s requires the whole %s group", cell.Name, cell.Group)
	}
	for _, other := range gs.Config.GroupCells(cell.Group) {
		if gs.Ledger[other].Mortgaged {
			return illegal("cannot build in %s group while %s is mortgaged", cell.Group, gs.Config.Board[other].Name)
		}
	}
	if h.Buildings >= Hotel {
		return illegal("%s already has a hotel", cell.Name)
	}
	if h.Buildings == Hotel-1 && gs.HotelsLeft < 1 {
		return illegal("no hotels left in the bank")
	}
	if h.Buildings < Hotel-1 && gs.HousesLeft < 1 {
		return illegal("no houses left in the bank")
	}
	if gs.Players[h.Owner].Cash < cell.BuildingCost {
		return illegal("%s cannot afford a building on %s", gs.Players[h.Owner].Name, cell.Name)
	}

	gs.Players[h.Owner].Cash -= cell.BuildingCost
	if h.Buildings == Hotel-1 {
		gs.HotelsLeft--
		gs.HousesLeft += Hotel - 1
	} else {
		gs.HousesLeft--
	}
	gs.Ledger[pos].Buildings++
	g.record(BuildingBoughtEvent, h.Owner, BankID, pos, cell.BuildingCost)
	return nil
}

// SellDown removes one building level from a street for half its building cost.
func (g *Game) SellDown(pos int) error {
	h, _, err := g.ownedProperty(pos)
	if err != nil {
		return err
	}
	if h.Buildings == 0 {
		return illegal("%s has no buildings", g.State.Config.Board[pos].Name)
	}
	g.sellDown(pos)
	return nil
}

// sellDown assumes pos has buildings. A hotel goes back to four houses; when the bank is
// short of houses it drops to as many as remain and the rest is refunded.
func (g *Game) sellDown(pos int) int {
	gs := g.State
	h := &gs.Ledger[pos]
	half := gs.Config.Board[pos].BuildingCost / 2

	var refund int
	if h.Buildings == Hotel {
		houses := min(Hotel-1, gs.HousesLeft)
		gs.HotelsLeft++
		gs.HousesLeft -= houses
		refund = (Hotel - houses) * half
		h.Buildings = houses
	} else {
		gs.HousesLeft++
		refund = half
		h.Buildings--
	}
	g.credit(h.Owner, refund)
	g.record(BuildingSoldEvent, h.Owner, BankID, pos, refund)
	return refund
}

// Mortgage pledges an undeveloped property to the bank for its mortgage value.
func (g *Game) Mortgage(pos int) error {
	gs := g.State
	h, cell, err := g.ownedProperty(pos)
	if err != nil {
		return err
	}
	if h.Mortgaged {
		return illegal("%s is already mortgaged", cell.Name)
	}
	if cell.Group.Buildable() {
		for _, other := range gs.Config.GroupCells(cell.Group) {
			if gs.Ledger[other].Buildings > 0 {
				return illegal("sell the buildings in the %s group before mortgaging %s", cell.Group, cell.Name)
			}
		}
	}
	g.mortgage(pos)
	return nil
}

func (g *Game) mortgage(pos int) int {
	gs := g.State
	h := &gs.Ledger[pos]
	value := gs.Config.Board[pos].Mortgage
	h.Mortgaged = true
	g.credit(h.Owner, value)
	g.record(MortgagedEvent, h.Owner, BankID, pos, value)
	return value
}

// Unmortgage repays the mortgage value plus interest and restores rent collection.
func (g *Game) Unmortgage(pos int) error {
	gs := g.State
	h, cell, err := g.ownedProperty(pos)
	if err != nil {
		return err
	}
	if !h.Mortgaged {
		return illegal("%s is not mortgaged", cell.Name)
	}
	cost := gs.UnmortgageCost(pos)
	if gs.Players[h.Owner].Cash < cost {
		return illegal("%s cannot afford to lift the mortgage on %s", gs.Players[h.Owner].Name, cell.Name)
	}

	gs.Players[h.Owner].Cash -= cost
	gs.Ledger[pos].Mortgaged = false
	g.record(UnmortgagedEvent, h.Owner, BankID, pos, cost)
	return nil
}

// UnmortgageCost is the mortgage value plus interest, rounded up.
func (gs *GameState) UnmortgageCost(pos int) int {
	value := gs.Config.Board[pos].Mortgage
	interest := (value*gs.Rules.MortgageInterestPercent() + 99) / 100
	return value + interest
}

// CanBuild reports whether BuildUp on pos would succeed, without mutating anything.
func (gs *GameState) CanBuild(pos int) bool {
	g := &Game{State: gs.Copy()}
	return g.BuildUp(pos) == nil
}

func (g *Game) ownedProperty(pos int) (Holding, Cell, error) {
	gs := g.State
	if !gs.Config.IsProperty(pos) {
		return Holding{}, Cell{}, illegal("cell %d is not a property", pos)
	}
	h := gs.Ledger[pos]
	cell := gs.Config.Board[pos]
	if h.Owner < 0 {
		return Holding{}, Cell{}, illegal("%s is not owned", cell.Name)
	}
	return h, cell, nil
}

func (g *Game) checkPlayer(player int) error {
	if player < 0 || player >= len(g.State.Players) {
		return illegal("unknown player %d", player)
	}
	if g.State.Players[player].Bankrupt {
		return illegal("%s is bankrupt", g.State.Players[player].Name)
	}
	return nil
}

func (g *Game) assign(player, pos int) {
	g.State.Ledger[pos] = Holding{Owner: player}
	g.State.Players[player].addProperty(pos)
}

// transfer hands a property to another player, keeping its mortgage flag.
func (g *Game) transfer(pos, to int) {
	gs := g.State
	from := gs.Ledger[pos].Owner
	gs.Players[from].removeProperty(pos)
	gs.Ledger[pos].Owner = to
	gs.Players[to].addProperty(pos)
	g.record(PropertyTransferredEvent, to, from, pos, 0)
}

// release returns a property to the bank, clearing buildings and mortgage.
func (g *Game) release(pos int) {
	gs := g.State
	h := gs.Ledger[pos]
	if h.Owner >= 0 {
		gs.Players[h.Owner].removeProperty(pos)
	}
	if h.Buildings == Hotel {
		gs.HotelsLeft++
	} else {
		gs.HousesLeft += h.Buildings
	}
	gs.Ledger[pos] = Holding{Owner: -1}
}
