package ports

// Dice is the source of randomness for conflict rolls.
type Dice interface {
	// Roll returns a uniform value in [0, 100).
	Roll() float64

	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}
