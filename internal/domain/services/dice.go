package services

import "math/rand/v2"

// RandomDice is a ports.Dice backed by math/rand/v2.
type RandomDice struct {
	rng *rand.Rand
}

// NewRandomDice creates dice seeded from the runtime's random source.
func NewRandomDice() *RandomDice {
	return &RandomDice{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededDice creates dice with a fixed seed, for reproducible runs.
func NewSeededDice(seed uint64) *RandomDice {
	return &RandomDice{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Roll returns a uniform value in [0, 100).
func (d *RandomDice) Roll() float64 {
	return d.rng.Float64() * 100
}

// Intn returns a uniform int in [0, n).
func (d *RandomDice) Intn(n int) int {
	return d.rng.IntN(n)
}
