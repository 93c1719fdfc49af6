package evolve

import (
	"strconv"
	"strings"

	"golife/internal/bitgrid"
)

// SeedPatchSize is the width and height, in cells, of a seed pattern. A
// seed is dropped centered on the board it is evaluated against.
const SeedPatchSize = 8

// TotalSeedCells is the number of cells a seed pattern covers.
const TotalSeedCells = SeedPatchSize * SeedPatchSize

// Seed is the phenotype: a small bit grid representing a candidate
// starting pattern.
type Seed struct {
	Grid *bitgrid.BitGrid
}

// NewSeed allocates an empty SeedPatchSize x SeedPatchSize seed.
func NewSeed() *Seed {
	return &Seed{Grid: bitgrid.New(SeedPatchSize, SeedPatchSize)}
}

// Key returns a value suitable for equality comparison and hashing in a
// fitness cache: two seeds with identical cell contents produce the
// same key, regardless of the chromosome(s) that expressed them.
func (s *Seed) Key() string {
	var b strings.Builder
	for _, unit := range s.Grid.Units() {
		b.WriteString(strconv.FormatUint(unit, 16))
		b.WriteByte(':')
	}
	return b.String()
}
