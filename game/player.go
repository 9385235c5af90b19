package game

import "monopoly/utils"

type JailStatus int

const (
	Free JailStatus = iota
	Visiting
	Jailed
)

func (s JailStatus) String() string {
	return enumName([]string{"free", "visiting", "jailed"}, int(s))
}

// Player is one account in the player arena, addressed by ID (its index).
type Player struct {
	ID         int
	Name       string
	Cash       int
	Position   int
	Properties []int // Owned board positions, ascending
	Jail       JailStatus
	JailTurns  int // Failed attempts to roll out of jail
	JailCards  int
	Doubles    int // Consecutive doubles in the current turn
	Bankrupt   bool
}

func NewPlayer(id int, name string, cash int) Player {
	return Player{
		ID:         id,
		Name:       name,
		Cash:       cash,
		Properties: []int{},
	}
}

func (p *Player) InJail() bool {
	return p.Jail == Jailed
}

func (p *Player) Owns(pos int) bool {
	return utils.FindIndex(p.Properties, pos) >= 0
}

func (p *Player) addProperty(pos int) {
	p.Properties = utils.InsertSorted(p.Properties, pos)
}

func (p *Player) removeProperty(pos int) {
	p.Properties = utils.Remove(p.Properties, pos)
}

func (p Player) copy() Player {
	props := make([]int, len(p.Properties))
	copy(props, p.Properties)
	p.Properties = props
	return p
}
