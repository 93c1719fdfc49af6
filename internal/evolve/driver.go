package evolve

import "math/rand"

// caStepTracker is implemented by evaluators that count automaton steps
// across their lifetime, such as SeedEvaluator. The driver type-asserts
// against it to report CA step counts without depending on the concrete
// evaluator type.
type caStepTracker interface {
	NumCASteps() uint32
}

// DriverStats summarizes the generational loop's own bookkeeping,
// distinct from any one population's fitness statistics.
type DriverStats struct {
	NumGenerations uint32
	NumEvaluations uint32

	// NumCASteps and CAStepsDelta are populated only when the driver's
	// evaluator implements caStepTracker; otherwise they stay zero.
	NumCASteps   uint32
	CAStepsDelta uint32
}

// Driver runs the generational evolutionary loop: it grows and evaluates
// a population, then breeds a replacement generation of the same size by
// repeatedly selecting parents and applying recombination and mutation.
type Driver struct {
	popSize int

	recombinationProb float32
	mutationProb      float32

	expressor Expressor
	evaluator Evaluator

	recombination Recombination
	mutation      Mutation
	selection     Selection

	population *Population

	numEvaluations uint32
	lastNumCASteps uint32
}

// DriverConfig collects the pieces a Driver needs beyond population size.
type DriverConfig struct {
	PopulationSize    int
	RecombinationProb float32
	MutationProb      float32
	Expressor         Expressor
	Evaluator         Evaluator
	Recombination     Recombination
	Mutation          Mutation
	Selection         Selection
}

// NewDriver builds a driver with an empty population; the first Step
// call populates it.
func NewDriver(cfg DriverConfig) *Driver {
	d := &Driver{
		popSize:           cfg.PopulationSize,
		recombinationProb: cfg.RecombinationProb,
		mutationProb:      cfg.MutationProb,
		expressor:         cfg.Expressor,
		evaluator:         cfg.Evaluator,
		recombination:     cfg.Recombination,
		mutation:          cfg.Mutation,
		selection:         cfg.Selection,
	}

	d.population = NewPopulation(d.popSize)

	return d
}

// EnableFitnessCache turns on fitness memoization for the driver's
// population.
func (d *Driver) EnableFitnessCache(cache *FitnessCache) {
	d.population.EnableFitnessCache(cache)
}

// Population returns the driver's current population.
func (d *Driver) Population() *Population { return d.population }

func (d *Driver) populate() {
	for d.population.Size() < d.popSize {
		genotype := NewChromosome(d.expressor.GenotypeLength())
		d.population.AddIndividual(NewIndividual(genotype))
	}
}

func (d *Driver) newGenotype(parent1, parent2 *Individual) *Chromosome {
	var child *Chromosome

	if rand.Float32() < d.recombinationProb {
		child = d.recombination.Recombine(parent1.Genotype, parent2.Genotype)
	} else {
		child = parent1.Genotype.Clone()
	}

	if rand.Float32() < d.mutationProb {
		d.mutation.Mutate(child)
	}

	return child
}

// nextIndividual produces one individual of the next generation: either
// an elite carried over unchanged, or a freshly bred child.
func (d *Driver) nextIndividual() *Individual {
	if d.selection.PreserveNext() {
		return d.selection.SelectFrom(d.population).Clone()
	}

	parent1 := d.selection.SelectFrom(d.population)
	parent2 := d.selection.SelectFrom(d.population)

	return NewIndividual(d.newGenotype(parent1, parent2))
}

// breed produces the next generation's individuals without installing
// them; Step installs the result as the new generation.
func (d *Driver) breed() []*Individual {
	d.selection.StartSelection(d.population)

	next := make([]*Individual, 0, d.popSize)
	for len(next) < d.popSize {
		next = append(next, d.nextIndividual())
	}

	return next
}

// Step advances the search by one generation. The very first call
// populates an initial generation; every call after that breeds a
// replacement generation from the current one. Either way, the
// resulting generation is grown and evaluated before Step returns, so
// PopulationStats reports real fitness data immediately afterwards.
func (d *Driver) Step() {
	if d.population.Size() == 0 {
		d.populate()
	} else {
		next := d.breed()
		d.population.NewGeneration(next)
	}

	d.population.Grow(d.expressor)

	before := d.population.Size()
	d.population.Evaluate(d.evaluator)
	d.numEvaluations += uint32(before)
}

// PopulationStats returns the current population's fitness statistics.
func (d *Driver) PopulationStats() (PopulationStats, bool) {
	return d.population.Stats()
}

// Stats returns the driver's own run statistics.
func (d *Driver) Stats() DriverStats {
	stats := DriverStats{
		NumGenerations: d.population.Generation(),
		NumEvaluations: d.numEvaluations,
	}

	if tracker, ok := d.evaluator.(caStepTracker); ok {
		total := tracker.NumCASteps()
		stats.NumCASteps = total
		stats.CAStepsDelta = total - d.lastNumCASteps
		d.lastNumCASteps = total
	}

	return stats
}
