package game

import "golang.org/x/exp/rand"

// Dice produces a pair of independent six-sided die faces.
type Dice interface {
	Roll() (int, int)
}

type randomDice struct {
	rng *rand.Rand
}

// NewRandomDice returns uniform dice driven by rng.
func NewRandomDice(rng *rand.Rand) Dice {
	return &randomDice{rng: rng}
}

func (d *randomDice) Roll() (int, int) {
	return d.rng.Intn(6) + 1, d.rng.Intn(6) + 1
}

// ScriptedDice replays a fixed sequence of rolls, then repeats the last one.
type ScriptedDice struct {
	Rolls [][2]int
	next  int
}

func NewScriptedDice(rolls ...[2]int) *ScriptedDice {
	return &ScriptedDice{Rolls: rolls}
}

func (d *ScriptedDice) Roll() (int, int) {
	if len(d.Rolls) == 0 {
		return 1, 2
	}
	i := d.next
	if i >= len(d.Rolls) {
		i = len(d.Rolls) - 1
	} else {
		d.next++
	}
	return d.Rolls[i][0], d.Rolls[i][1]
}

// Remaining reports how many scripted rolls have not been used.
func (d *ScriptedDice) Remaining() int {
	return len(d.Rolls) - d.next
}
