package game

const (
	MinPlayers = 2
	MaxPlayers = 6
)

type JailOption int

const (
	RollForDoubles JailOption = iota
	PayFine
	UseCard
)

func (o JailOption) String() string {
	return enumName([]string{"roll", "pay_fine", "use_card"}, int(o))
}

// Decider answers the choice points of a turn. Calls are synchronous: the turn does not
// progress until the decider returns. The state must be treated as read-only.
type Decider interface {
	// DecidePurchase is asked when the player lands on an unowned property it can afford.
	DecidePurchase(gs *GameState, player, pos int) bool
	// DecideBid returns a bid of at least minBid, or false to withdraw from the auction.
	DecideBid(gs *GameState, player, pos, minBid int) (int, bool)
	// DecideJailExit picks one of the available options at the start of a jailed turn.
	DecideJailExit(gs *GameState, player int, options []JailOption) JailOption
}

// Builder is an optional Decider capability asked at the end of each turn. It returns the
// position to build one level on, or false to stop building.
type Builder interface {
	DecideBuild(gs *GameState, player int) (int, bool)
}

// passive declines every purchase and bid and always rolls in jail.
type passive struct{}

func (passive) DecidePurchase(*GameState, int, int) bool { return false }

func (passive) DecideBid(*GameState, int, int, int) (int, bool) { return 0, false }

func (passive) DecideJailExit(*GameState, int, []JailOption) JailOption { return RollForDoubles }
