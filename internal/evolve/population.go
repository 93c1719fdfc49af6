package evolve

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// Individual pairs a genotype with its (once computed) phenotype and
// fitness. Cloning an Individual shares the underlying genotype and
// phenotype pointers rather than deep-copying them — the same pattern
// the teacher's reference-counted sharing in the original design used —
// since a carried-over elite individual should keep referring to the
// exact genotype it already was scored against.
type Individual struct {
	Genotype *Chromosome

	Phenotype   *Seed
	hasPhenotype bool

	Fitness   float32
	hasFitness bool
}

// NewIndividual wraps a fresh genotype with no phenotype or fitness yet.
func NewIndividual(genotype *Chromosome) *Individual {
	return &Individual{Genotype: genotype}
}

// Clone returns a shallow copy: the genotype and phenotype pointers are
// shared, not duplicated.
func (ind *Individual) Clone() *Individual {
	clone := *ind
	return &clone
}

func (ind *Individual) HasPhenotype() bool { return ind.hasPhenotype }
func (ind *Individual) HasFitness() bool   { return ind.hasFitness }

func (ind *Individual) setPhenotype(p *Seed) {
	ind.Phenotype = p
	ind.hasPhenotype = true
}

func (ind *Individual) setFitness(f float32) {
	ind.Fitness = f
	ind.hasFitness = true
}

// FitnessCache memoizes fitness by phenotype identity, so that
// expressors with redundant (neutral) encodings don't pay for a fresh
// simulation every time two different genotypes happen to express the
// same seed. A bloom filter gates the exact lookup: most phenotypes are
// novel, so a cheap probabilistic "definitely not seen" answer avoids an
// exact-map lookup on the common path.
type FitnessCache struct {
	filter *bloom.BloomFilter
	exact  map[string]float32
}

// NewFitnessCache sizes the bloom filter for roughly expectedPhenotypes
// entries at the given target false-positive rate.
func NewFitnessCache(expectedPhenotypes uint, falsePositiveRate float64) *FitnessCache {
	return &FitnessCache{
		filter: bloom.NewWithEstimates(expectedPhenotypes, falsePositiveRate),
		exact:  make(map[string]float32),
	}
}

func (c *FitnessCache) get(seed *Seed) (float32, bool) {
	key := seed.Key()
	if !c.filter.TestString(key) {
		return 0, false
	}
	v, ok := c.exact[key]
	return v, ok
}

func (c *FitnessCache) put(seed *Seed, fitness float32) {
	key := seed.Key()
	c.filter.AddString(key)
	c.exact[key] = fitness
}

// PopulationStats summarizes one generation's fitness distribution.
type PopulationStats struct {
	MaxFitness float32
	AvgFitness float32
	BestIndiv  *Individual
}

// Population holds one generation's individuals.
type Population struct {
	individuals  []*Individual
	fitnessCache *FitnessCache
	generation   uint32
}

// NewPopulation allocates an empty population with room for capacity
// individuals.
func NewPopulation(capacity int) *Population {
	return &Population{
		individuals: make([]*Individual, 0, capacity),
		generation:  1,
	}
}

// EnableFitnessCache turns on fitness memoization for this population.
func (p *Population) EnableFitnessCache(cache *FitnessCache) {
	p.fitnessCache = cache
}

// GetIndividual returns the individual at index, which must be in range.
func (p *Population) GetIndividual(index int) *Individual {
	return p.individuals[index]
}

// AddIndividual appends an individual to the population.
func (p *Population) AddIndividual(ind *Individual) {
	p.individuals = append(p.individuals, ind)
}

// Size returns the number of individuals.
func (p *Population) Size() int { return len(p.individuals) }

// Generation returns the current generation number, starting at 1.
func (p *Population) Generation() uint32 { return p.generation }

// All returns the population's individuals. Callers must not mutate the
// returned slice.
func (p *Population) All() []*Individual { return p.individuals }

// Grow expresses the phenotype of every individual that doesn't have one
// yet.
func (p *Population) Grow(expressor Expressor) {
	for _, ind := range p.individuals {
		if !ind.hasPhenotype {
			ind.setPhenotype(expressor.Express(ind.Genotype))
		}
	}
}

// Evaluate computes the fitness of every grown individual that doesn't
// have one yet, consulting the fitness cache first when enabled.
func (p *Population) Evaluate(evaluator Evaluator) {
	for _, ind := range p.individuals {
		if !ind.hasPhenotype || ind.hasFitness {
			continue
		}

		if p.fitnessCache != nil {
			if cached, ok := p.fitnessCache.get(ind.Phenotype); ok {
				ind.setFitness(cached)
				continue
			}
			fitness := evaluator.Evaluate(ind.Phenotype)
			p.fitnessCache.put(ind.Phenotype, fitness)
			ind.setFitness(fitness)
			continue
		}

		ind.setFitness(evaluator.Evaluate(ind.Phenotype))
	}
}

// NewGeneration replaces the population with newIndivs, which must have
// the same size as the current population, and advances the generation
// counter.
func (p *Population) NewGeneration(newIndivs []*Individual) {
	if len(newIndivs) != len(p.individuals) {
		panic("evolve: NewGeneration requires the same population size")
	}

	p.individuals = newIndivs
	p.generation++
}

// Stats returns the population's fitness statistics, or false if no
// individual has been evaluated yet.
func (p *Population) Stats() (PopulationStats, bool) {
	var max float32
	var sum float32
	var num int
	var best *Individual
	haveMax := false

	for _, ind := range p.individuals {
		if !ind.hasFitness {
			continue
		}
		sum += ind.Fitness
		num++
		if !haveMax || ind.Fitness > max {
			max = ind.Fitness
			best = ind
			haveMax = true
		}
	}

	if !haveMax {
		return PopulationStats{}, false
	}

	return PopulationStats{
		MaxFitness: max,
		AvgFitness: sum / float32(num),
		BestIndiv:  best,
	}, true
}

// GeneDistribution returns, per chromosome bit position, the fraction of
// the population with that bit set.
func (p *Population) GeneDistribution() []float32 {
	if len(p.individuals) == 0 {
		return nil
	}

	length := len(p.individuals[0].Genotype.Bits)
	counts := make([]int, length)

	for _, ind := range p.individuals {
		for i, bit := range ind.Genotype.Bits {
			if bit {
				counts[i]++
			}
		}
	}

	dist := make([]float32, length)
	for i, c := range counts {
		dist[i] = float32(c) / float32(len(p.individuals))
	}
	return dist
}

// CellDistribution returns, per seed cell, the fraction of grown
// individuals with that cell alive.
func (p *Population) CellDistribution() []float32 {
	counts := make([]int, TotalSeedCells)
	numGrown := 0

	for _, ind := range p.individuals {
		if !ind.hasPhenotype {
			continue
		}
		cell := 0
		for y := 0; y < SeedPatchSize; y++ {
			for x := 0; x < SeedPatchSize; x++ {
				if ind.Phenotype.Grid.Get(x, y) {
					counts[cell]++
				}
				cell++
			}
		}
		numGrown++
	}

	dist := make([]float32, TotalSeedCells)
	if numGrown == 0 {
		return dist
	}
	for i, c := range counts {
		dist[i] = float32(c) / float32(numGrown)
	}
	return dist
}
