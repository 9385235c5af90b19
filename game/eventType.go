package game

// EventKind represents something that happened while resolving a turn.
type EventKind int

const (
	RolledEvent EventKind = iota
	MovedEvent
	PassedGoEvent
	PurchasedEvent
	RentPaidEvent
	TaxPaidEvent
	KittyCollectedEvent
	CardDrawnEvent
	JailedEvent
	ReleasedEvent
	StayedInJailEvent
	PaidEvent
	ReceivedEvent
	BuildingBoughtEvent
	BuildingSoldEvent
	MortgagedEvent
	UnmortgagedEvent
	BidEvent
	WithdrewEvent
	AuctionWonEvent
	AuctionNoBidsEvent
	BankruptEvent
	PropertyTransferredEvent
	GameOverEvent
)

var eventKindNames = []string{
	"rolled", "moved", "passed_go", "purchased", "rent_paid", "tax_paid", "kitty_collected",
	"card_drawn", "jailed", "released", "stayed_in_jail", "paid", "received",
	"building_bought", "building_sold", "mortgaged", "unmortgaged", "bid", "withdrew",
	"auction_won", "auction_no_bids", "bankrupt", "property_transferred", "game_over",
}

func (k EventKind) String() string { return enumName(eventKindNames, int(k)) }

// Counterparty ids for events and payees that are not players.
const (
	BankID  = -1
	KittyID = -2
)

// Event is one entry of the structured turn log.
type Event struct {
	Kind   EventKind
	Player int
	Other  int    // Counterparty player, BankID or KittyID
	Cell   int    // Board position involved, -1 if none
	Amount int    // Money moved or bid placed
	Dice   [2]int // Set on RolledEvent
	Text   string // Card text or jail option
}

// TurnOutcome is the log of one full turn, including repeats for doubles.
type TurnOutcome struct {
	Player   int
	Events   []Event
	Finished bool
	Winner   int // -1 while the game runs
}
