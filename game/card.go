package game

import (
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

type EffectKind int

const (
	CreditEffect      EffectKind = iota // Bank pays the drawer Amount
	DebitEffect                         // Drawer pays Amount to the kitty
	RelocateEffect                      // Advance to Cell
	MoveEffect                          // Move Spaces (negative moves back, no Go bonus)
	NearestEffect                       // Advance to the next cell of Group
	GoToJailEffect                      // Straight to jail
	CollectEachEffect                   // Every other player pays the drawer Amount
	PayEachEffect                       // Drawer pays every other player Amount
	RepairsEffect                       // Drawer pays PerHouse and PerHotel to the kitty
	JailCardEffect                      // Drawer keeps a get-out-of-jail-free card
)

var effectKindNames = []string{"credit", "debit", "relocate", "move", "nearest", "go_to_jail", "collect_each", "pay_each", "repairs", "jail_card"}

func (k EffectKind) String() string { return enumName(effectKindNames, int(k)) }

func (k *EffectKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeEnum(value, effectKindNames)
	*k = EffectKind(v)
	return err
}

// Effect describes what a card does. Only the fields relevant to Kind are set.
type Effect struct {
	Kind     EffectKind `yaml:"kind"`
	Amount   int        `yaml:"amount"`
	Cell     int        `yaml:"cell"`
	Spaces   int        `yaml:"spaces"`
	Group    Group      `yaml:"group"`
	PerHouse int        `yaml:"per_house"`
	PerHotel int        `yaml:"per_hotel"`
}

type Card struct {
	Text   string `yaml:"text"`
	Effect Effect `yaml:"effect"`
}

// Deck is a cyclic sequence of cards: a drawn card goes back to the bottom,
// so every card recurs once per len(Cards) draws.
type Deck struct {
	Cards []Card
	Next  int // Index of the top card
}

// NewDeck copies cards and permutes them once with rng. A nil rng keeps the given order.
func NewDeck(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{Cards: make([]Card, len(cards))}
	copy(d.Cards, cards)
	if rng != nil {
		rng.Shuffle(len(d.Cards), func(i, j int) {
			d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
		})
	}
	return d
}

// Draw returns the top card and moves it to the bottom.
func (d *Deck) Draw() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card := d.Cards[d.Next]
	d.Next = (d.Next + 1) % len(d.Cards)
	return card, true
}

func (d *Deck) Copy() *Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return &Deck{Cards: cards, Next: d.Next}
}
