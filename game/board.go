package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	BoardSize   = 40
	NumDeck     = 16
	NumProperty = 28
)

type CellKind int

const (
	GoCell CellKind = iota
	PropertyCell
	CommunityChestCell
	ChanceCell
	JailCell
	FreeParkingCell
	GoToJailCell
	TaxCell
)

var cellKindNames = []string{"go", "property", "community_chest", "chance", "jail", "free_parking", "go_to_jail", "tax"}

func (k CellKind) String() string { return enumName(cellKindNames, int(k)) }

func (k *CellKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeEnum(value, cellKindNames)
	*k = CellKind(v)
	return err
}

// Group is the color group of a property. Railroads and utilities are groups without buildings.
type Group int

const (
	NoGroup Group = iota
	Brown
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	DarkBlue
	Railroad
	Utility
)

var groupNames = []string{"none", "brown", "light_blue", "pink", "orange", "red", "yellow", "green", "dark_blue", "railroad", "utility"}

func (g Group) String() string { return enumName(groupNames, int(g)) }

func (g *Group) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeEnum(value, groupNames)
	*g = Group(v)
	return err
}

// Buildable reports whether houses and hotels can be placed on the group.
func (g Group) Buildable() bool {
	return g != NoGroup && g != Railroad && g != Utility
}

// Cell is one immutable board position. Property fields are zero for non-property cells.
type Cell struct {
	Kind         CellKind `yaml:"kind"`
	Name         string   `yaml:"name"`
	Amount       int      `yaml:"amount"` // Tax amount
	Group        Group    `yaml:"group"`
	Price        int      `yaml:"price"`
	Mortgage     int      `yaml:"mortgage"`
	BuildingCost int      `yaml:"building_cost"`
	// Streets: base, monopoly, 1-4 houses, hotel.
	// Railroads: rent by number owned (1-4).
	// Utilities: dice multiplier by number owned (1-2).
	Rent []int `yaml:"rent"`
}

// Config is the immutable table of board cells and card decks consumed by the engine.
type Config struct {
	Board          []Cell `yaml:"board"`
	Chance         []Card `yaml:"chance"`
	CommunityChest []Card `yaml:"community_chest"`

	jail        int
	freeParking int
	groups      map[Group][]int
}

//go:embed board.yaml
var standardBoard []byte

// LoadConfig returns the standard board and decks.
func LoadConfig() (*Config, error) {
	return ParseConfig(standardBoard)
}

// ParseConfig decodes and validates a YAML configuration table.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &Error{Code: CodeInvalidConfig, Message: "decode board", Cause: err}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if len(c.Board) != BoardSize {
		return invalidConfig("board has %d cells, want %d", len(c.Board), BoardSize)
	}

	counts := make(map[CellKind]int)
	c.groups = make(map[Group][]int)
	for pos, cell := range c.Board {
		counts[cell.Kind]++
		switch cell.Kind {
		case JailCell:
			c.jail = pos
		case FreeParkingCell:
			c.freeParking = pos
		case TaxCell:
			if cell.Amount < 0 {
				return invalidConfig("cell %d: negative tax", pos)
			}
		case PropertyCell:
			if err := validateDeed(pos, cell); err != nil {
				return err
			}
			c.groups[cell.Group] = append(c.groups[cell.Group], pos)
		}
	}

	for _, kind := range []CellKind{GoCell, JailCell, FreeParkingCell, GoToJailCell} {
		if counts[kind] != 1 {
			return invalidConfig("board has %d %s cells, want 1", counts[kind], kind)
		}
	}
	if counts[PropertyCell] != NumProperty {
		return invalidConfig("board has %d property cells, want %d", counts[PropertyCell], NumProperty)
	}
	if counts[ChanceCell] != 3 || counts[CommunityChestCell] != 3 {
		return invalidConfig("board needs 3 chance and 3 community chest cells")
	}
	if counts[TaxCell] != 2 {
		return invalidConfig("board has %d tax cells, want 2", counts[TaxCell])
	}
	if c.Board[0].Kind != GoCell {
		return invalidConfig("cell 0 must be go")
	}

	for name, deck := range map[string][]Card{"chance": c.Chance, "community_chest": c.CommunityChest} {
		if len(deck) != NumDeck {
			return invalidConfig("%s deck has %d cards, want %d", name, len(deck), NumDeck)
		}
		for i, card := range deck {
			if err := c.validateEffect(card.Effect); err != nil {
				return &Error{Code: CodeInvalidConfig, Message: fmt.Sprintf("%s card %d", name, i), Cause: err}
			}
		}
	}
	return nil
}

func validateDeed(pos int, cell Cell) error {
	if cell.Price <= 0 || cell.Mortgage <= 0 {
		return invalidConfig("cell %d: price and mortgage must be positive", pos)
	}
	switch cell.Group {
	case NoGroup:
		return invalidConfig("cell %d: property without group", pos)
	case Railroad:
		if len(cell.Rent) != 4 {
			return invalidConfig("cell %d: railroad rent needs 4 entries", pos)
		}
	case Utility:
		if len(cell.Rent) != 2 {
			return invalidConfig("cell %d: utility rent needs 2 multipliers", pos)
		}
	default:
		if len(cell.Rent) != 7 {
			return invalidConfig("cell %d: street rent needs 7 entries", pos)
		}
		if cell.Rent[1] <= cell.Rent[0] {
			return invalidConfig("cell %d: monopoly rent must exceed base rent", pos)
		}
		if cell.BuildingCost <= 0 {
			return invalidConfig("cell %d: building cost must be positive", pos)
		}
	}
	return nil
}

func (c *Config) validateEffect(e Effect) error {
	switch e.Kind {
	case RelocateEffect:
		if e.Cell < 0 || e.Cell >= BoardSize {
			return invalidConfig("relocation target %d off the board", e.Cell)
		}
	case NearestEffect:
		if len(c.groups[e.Group]) == 0 {
			return invalidConfig("no cells in group %s", e.Group)
		}
	case CreditEffect, DebitEffect, CollectEachEffect, PayEachEffect:
		if e.Amount < 0 {
			return invalidConfig("negative amount %d", e.Amount)
		}
	case RepairsEffect:
		if e.PerHouse < 0 || e.PerHotel < 0 {
			return invalidConfig("negative repair assessment")
		}
	}
	return nil
}

// Cell returns the cell at a board position.
func (c *Config) Cell(pos int) Cell {
	return c.Board[pos]
}

// IsProperty reports whether pos holds a purchasable property.
func (c *Config) IsProperty(pos int) bool {
	return pos >= 0 && pos < len(c.Board) && c.Board[pos].Kind == PropertyCell
}

// GroupCells returns the board positions of every property in a group.
func (c *Config) GroupCells(g Group) []int {
	return c.groups[g]
}

func (c *Config) JailPosition() int { return c.jail }

func (c *Config) FreeParkingPosition() int { return c.freeParking }

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func decodeEnum(value *yaml.Node, names []string) (int, error) {
	var s string
	if err := value.Decode(&s); err != nil {
		return 0, err
	}
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("line %d: unknown value %q", value.Line, s)
}
