package game

// Hotel is the building level of a hotel; levels 1-4 are houses.
const Hotel = 5

// Ownership is the state of a property in the ledger.
type Ownership int

const (
	Unowned Ownership = iota
	Owned
	Mortgaged
)

func (o Ownership) String() string {
	return enumName([]string{"unowned", "owned", "mortgaged"}, int(o))
}

// Holding is the mutable ledger entry of one board position.
type Holding struct {
	Owner     int // Player ID, -1 when unowned
	Buildings int // 0-4 houses, Hotel
	Mortgaged bool
}

func (h Holding) Status() Ownership {
	switch {
	case h.Owner < 0:
		return Unowned
	case h.Mortgaged:
		return Mortgaged
	default:
		return Owned
	}
}

// GameState is the dynamic state of one game. Players and holdings live in arenas addressed
// by player ID and board position; nothing holds references into them.
type GameState struct {
	Config         *Config   // Static board and decks
	Rules          Rules     // Economic constants
	Players        []Player  // Indexed by player ID
	Ledger         []Holding // Indexed by board position
	Kitty          Kitty
	Chance         *Deck
	CommunityChest *Deck
	HousesLeft     int
	HotelsLeft     int
	Current        int    // Player whose turn is next
	Turn           int    // Completed turns
	LastRoll       [2]int // Most recent dice roll
	Won            int    // Winner ID, -1 while the game runs
}

func newGameState(cfg *Config, rules Rules, names []string) *GameState {
	gs := &GameState{
		Config:     cfg,
		Rules:      rules,
		Players:    make([]Player, len(names)),
		Ledger:     make([]Holding, len(cfg.Board)),
		HousesLeft: rules.HouseSupply(),
		HotelsLeft: rules.HotelSupply(),
		Won:        -1,
	}
	for i, name := range names {
		gs.Players[i] = NewPlayer(i, name, rules.StartingCash())
	}
	for pos := range gs.Ledger {
		gs.Ledger[pos].Owner = -1
	}
	return gs
}

// Copy returns a deep copy sharing only the immutable Config and Rules.
func (gs *GameState) Copy() *GameState {
	players := make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.copy()
	}
	ledger := make([]Holding, len(gs.Ledger))
	copy(ledger, gs.Ledger)

	c := *gs
	c.Players = players
	c.Ledger = ledger
	if gs.Chance != nil {
		c.Chance = gs.Chance.Copy()
	}
	if gs.CommunityChest != nil {
		c.CommunityChest = gs.CommunityChest.Copy()
	}
	return &c
}

func (gs *GameState) Player(id int) *Player {
	return &gs.Players[id]
}

func (gs *GameState) Holding(pos int) Holding {
	return gs.Ledger[pos]
}

// Active returns the IDs of players that are not bankrupt, in seat order.
func (gs *GameState) Active() []int {
	ids := []int{}
	for _, p := range gs.Players {
		if !p.Bankrupt {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// rotation returns active players in seat order starting from first.
func (gs *GameState) rotation(first int) []int {
	ids := []int{}
	n := len(gs.Players)
	for i := 0; i < n; i++ {
		id := (first + i) % n
		if !gs.Players[id].Bankrupt {
			ids = append(ids, id)
		}
	}
	return ids
}

// NextPlayer returns the next non-bankrupt player after the current one.
func (gs *GameState) NextPlayer() int {
	n := len(gs.Players)
	for i := 1; i <= n; i++ {
		id := (gs.Current + i) % n
		if !gs.Players[id].Bankrupt {
			return id
		}
	}
	return gs.Current
}

// OwnsGroup reports whether player holds every property of the group, mortgaged or not.
func (gs *GameState) OwnsGroup(player int, g Group) bool {
	cells := gs.Config.GroupCells(g)
	if len(cells) == 0 {
		return false
	}
	for _, pos := range cells {
		if gs.Ledger[pos].Owner != player {
			return false
		}
	}
	return true
}

func (gs *GameState) countOwned(player int, g Group) int {
	n := 0
	for _, pos := range gs.Config.GroupCells(g) {
		if gs.Ledger[pos].Owner == player {
			n++
		}
	}
	return n
}

// Rent is what a visitor owes on pos given the dice total that brought them there.
func (gs *GameState) Rent(pos, diceTotal int) int {
	h := gs.Ledger[pos]
	if !gs.Config.IsProperty(pos) || h.Owner < 0 || h.Mortgaged {
		return 0
	}
	cell := gs.Config.Board[pos]
	switch cell.Group {
	case Railroad:
		n := min(gs.countOwned(h.Owner, Railroad), len(cell.Rent))
		return cell.Rent[n-1]
	case Utility:
		n := min(gs.countOwned(h.Owner, Utility), len(cell.Rent))
		return diceTotal * cell.Rent[n-1]
	default:
		if h.Buildings > 0 {
			return cell.Rent[1+h.Buildings]
		}
		if gs.OwnsGroup(h.Owner, cell.Group) {
			return cell.Rent[1]
		}
		return cell.Rent[0]
	}
}

// Buildings counts the houses and hotels standing on a player's properties.
func (gs *GameState) Buildings(player int) (houses, hotels int) {
	for _, pos := range gs.Players[player].Properties {
		switch b := gs.Ledger[pos].Buildings; {
		case b == Hotel:
			hotels++
		case b > 0:
			houses += b
		}
	}
	return houses, hotels
}

// Finished reports whether only one player remains.
func (gs *GameState) Finished() bool {
	return gs.Won >= 0
}

func (gs *GameState) Winner() (int, bool) {
	return gs.Won, gs.Won >= 0
}

func (gs *GameState) checkWinner() bool {
	active := gs.Active()
	if len(active) == 1 {
		gs.Won = active[0]
	}
	return gs.Won >= 0
}
