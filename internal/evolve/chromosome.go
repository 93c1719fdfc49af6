// Package evolve implements the generational evolutionary search: bit
// chromosomes, mutation/crossover operators, expressors that decode a
// chromosome into a seed pattern, an evaluator that scores a seed by
// running it through the automaton package, selection strategies, and
// the driver that ties the generational loop together.
package evolve

import "math/rand"

// Chromosome is a fixed-length bit string genotype.
type Chromosome struct {
	Bits []bool
}

// NewChromosome creates a chromosome of the given length with bits drawn
// uniformly at random.
func NewChromosome(size int) *Chromosome {
	bits := make([]bool, size)
	for i := range bits {
		bits[i] = rand.Int31n(2) == 1
	}
	return &Chromosome{Bits: bits}
}

// ZeroChromosome creates a chromosome of the given length with every bit
// clear.
func ZeroChromosome(size int) *Chromosome {
	return &Chromosome{Bits: make([]bool, size)}
}

// OnesChromosome creates a chromosome of the given length with every bit
// set.
func OnesChromosome(size int) *Chromosome {
	bits := make([]bool, size)
	for i := range bits {
		bits[i] = true
	}
	return &Chromosome{Bits: bits}
}

// Clone returns a deep copy, so that mutating the copy never affects a
// chromosome shared by another individual.
func (c *Chromosome) Clone() *Chromosome {
	bits := make([]bool, len(c.Bits))
	copy(bits, c.Bits)
	return &Chromosome{Bits: bits}
}
