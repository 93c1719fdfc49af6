package evolve

import (
	"math"
	"math/rand"
	"sort"

	"golife/internal/support"
)

// Mutation flips bits of a chromosome in place.
type Mutation interface {
	Mutate(target *Chromosome)
}

// Recombination derives a child chromosome from two parents.
type Recombination interface {
	Recombine(parent1, parent2 *Chromosome) *Chromosome
}

// BitMutation flips each bit independently with probability mutateProb.
//
// Rather than rolling a coin for every bit, it draws the distance to the
// next bit to flip directly from the geometric distribution that
// per-bit-independent flipping induces:
//
//	offset = floor( ln(1 - u) / ln(1 - p) )
//
// where u is uniform on [0, 1) and p is the per-bit flip probability.
// This is equivalent to, but far cheaper than, testing every bit.
type BitMutation struct {
	mutateProb float32
}

// NewBitMutation builds a mutation operator with the given per-bit flip
// probability.
func NewBitMutation(mutateProb float32) *BitMutation {
	return &BitMutation{mutateProb: mutateProb}
}

func (m *BitMutation) Mutate(target *Chromosome) {
	denom := math.Log(1.0 - float64(m.mutateProb))
	i := 0

	for {
		num := math.Log(1.0 - rand.Float64())
		i += int(num / denom)
		if i >= len(target.Bits) {
			return
		}

		target.Bits[i] = !target.Bits[i]
		i++
	}
}

// NPointCrossover builds a child by copying parent1 and then swapping in
// alternating spans from parent2 between n randomly chosen cut points.
type NPointCrossover struct {
	n int
}

// NewNPointCrossover builds an n-point crossover operator for chromosomes
// of the given length, which must be at least 2: a cut point needs at
// least one bit on either side of it to have any effect.
func NewNPointCrossover(n int, chromosomeLength int) (*NPointCrossover, error) {
	if chromosomeLength < 2 {
		return nil, support.ConfigurationInvalid("n-point crossover needs a chromosome of at least 2 bits, got %d", chromosomeLength)
	}
	return &NPointCrossover{n: n}, nil
}

func (c *NPointCrossover) Recombine(parent1, parent2 *Chromosome) *Chromosome {
	span := len(parent1.Bits)
	if len(parent2.Bits) < span {
		span = len(parent2.Bits)
	}

	points := make([]int, c.n)
	for i := range points {
		points[i] = 1 + rand.Intn(span-1)
	}
	sort.Ints(points)

	if c.n%2 == 1 {
		points = append(points, len(parent1.Bits))
	}

	child := parent1.Clone()
	for i := 0; i < len(points)/2; i++ {
		from := points[i*2]
		to := points[i*2+1]
		for j := from; j < to; j++ {
			child.Bits[j] = parent2.Bits[j]
		}
	}

	return child
}

// UniformRecombination builds a child by picking each bit independently
// from either parent, with bias controlling how strongly one parent is
// favored.
type UniformRecombination struct {
	bias float32
}

// NewUniformRecombination builds a uniform recombination operator.
// bias must be in [0, 1): 0 means bits are chosen from either parent
// with equal probability; as bias approaches 1, nearly all bits come
// from parent1, which amounts to no recombination at all.
func NewUniformRecombination(bias float32) (*UniformRecombination, error) {
	if bias < 0.0 || bias >= 1.0 {
		return nil, support.ConfigurationInvalid("uniform recombination bias %v out of range [0, 1)", bias)
	}
	return &UniformRecombination{bias: bias}, nil
}

func (c *UniformRecombination) Recombine(parent1, parent2 *Chromosome) *Chromosome {
	child := parent1.Clone()
	limit := 0.5 * (1.0 + c.bias)

	for i := range child.Bits {
		if rand.Float32() >= limit {
			child.Bits[i] = parent2.Bits[i]
		}
	}

	return child
}
