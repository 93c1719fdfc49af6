package evolve

import "golife/internal/support"

// Expressor decodes a genotype into a phenotype.
type Expressor interface {
	Express(genotype *Chromosome) *Seed

	// GenotypeLength returns the chromosome length this expressor
	// requires.
	GenotypeLength() int
}

// SimpleExpressor maps each chromosome bit directly onto one seed cell,
// in column-major order: bit i sets cell (i / SeedPatchSize,
// i % SeedPatchSize). Genotype length equals TotalSeedCells.
type SimpleExpressor struct{}

func NewSimpleExpressor() *SimpleExpressor { return &SimpleExpressor{} }

func (e *SimpleExpressor) GenotypeLength() int { return TotalSeedCells }

func (e *SimpleExpressor) Express(genotype *Chromosome) *Seed {
	seed := NewSeed()
	index := 0

	for x := 0; x < SeedPatchSize; x++ {
		for y := 0; y < SeedPatchSize; y++ {
			if genotype.Bits[index] {
				seed.Grid.Set(x, y)
			}
			index++
		}
	}

	return seed
}

// NeutralExpressor decodes a chromosome using a redundant (neutral)
// encoding: a table of 2^(bitsPerCell-1) "group values" plus, per group,
// a swap bit that can exchange it with its neighbor; and then, for each
// cell, bitsPerCell bits that either vote by majority (using the first
// bit as a "use majority vote" flag) or index into the group table.
//
// The redundancy means many distinct chromosomes express the same seed,
// which helps keep mutation from locking the search into a single
// encoding of a good pattern.
type NeutralExpressor struct {
	bitsPerCell uint8
	numGroups   uint8
	groupValues []bool
}

// NewNeutralExpressor builds a neutral expressor with the given number
// of bits per cell, which must be at least 2.
func NewNeutralExpressor(bitsPerCell uint8) (*NeutralExpressor, error) {
	if bitsPerCell <= 1 {
		return nil, support.ConfigurationInvalid("neutral encoding needs more than one bit per cell, got %d", bitsPerCell)
	}

	numGroups := uint8(1) << (bitsPerCell - 1)
	return &NeutralExpressor{
		bitsPerCell: bitsPerCell,
		numGroups:   numGroups,
		groupValues: make([]bool, 0, numGroups),
	}, nil
}

func (e *NeutralExpressor) GenotypeLength() int {
	return TotalSeedCells*int(e.bitsPerCell) + 2*int(e.numGroups)
}

func (e *NeutralExpressor) Express(genotype *Chromosome) *Seed {
	seed := NewSeed()

	ng := int(e.numGroups)
	e.groupValues = e.groupValues[:0]
	for i := 0; i < ng; i++ {
		e.groupValues = append(e.groupValues, genotype.Bits[i])
	}

	for i := 0; i < ng; i++ {
		if genotype.Bits[ng+i] {
			j := (i + 1) % ng
			e.groupValues[i], e.groupValues[j] = e.groupValues[j], e.groupValues[i]
		}
	}

	index := 2 * ng

	for y := 0; y < SeedPatchSize; y++ {
		for x := 0; x < SeedPatchSize; x++ {
			n := int(e.bitsPerCell) - 1
			var cellState bool

			if genotype.Bits[index] {
				votes := 0
				for n > 0 {
					if genotype.Bits[index+n] {
						votes++
					}
					n--
				}
				cellState = votes >= int(e.bitsPerCell>>1)
			} else {
				group := 0
				for n > 0 {
					group <<= 1
					if genotype.Bits[index+n] {
						group++
					}
					n--
				}
				cellState = e.groupValues[group]
			}

			if cellState {
				seed.Grid.Set(x, y)
			}

			index += int(e.bitsPerCell)
		}
	}

	return seed
}
