package mocks

// Dice is a mock implementation of ports.Dice that replays fixed values.
// When a sequence runs out its last value repeats; an empty sequence yields 0.
type Dice struct {
	Rolls []float64
	Ints  []int

	rollIdx int
	intIdx  int
}

// NewDice creates a mock Dice that returns the given rolls in order.
func NewDice(rolls ...float64) *Dice {
	return &Dice{Rolls: rolls}
}

// Roll returns the next fixed roll.
func (d *Dice) Roll() float64 {
	if len(d.Rolls) == 0 {
		return 0
	}
	v := d.Rolls[min(d.rollIdx, len(d.Rolls)-1)]
	d.rollIdx++
	return v
}

// Intn returns the next fixed int, reduced modulo n.
func (d *Dice) Intn(n int) int {
	if len(d.Ints) == 0 || n <= 0 {
		return 0
	}
	v := d.Ints[min(d.intIdx, len(d.Ints)-1)]
	d.intIdx++
	return v % n
}
