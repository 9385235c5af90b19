package game

// Kitty is the shared pool fed by taxes and fines and paid out on the collector cell.
type Kitty struct {
	Balance int
}

func (k *Kitty) Deposit(amount int) {
	k.Balance += amount
}

// Collect empties the pool and returns what it held.
func (k *Kitty) Collect() int {
	amount := k.Balance
	k.Balance = 0
	return amount
}
