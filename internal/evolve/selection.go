package evolve

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// Selection picks individuals from a population to become parents of the
// next generation.
type Selection interface {
	// StartSelection prepares a new selection round over population.
	StartSelection(population *Population)

	// PreserveNext reports whether the next individual produced by the
	// driver should be copied into the new generation unchanged, rather
	// than bred.
	PreserveNext() bool

	// SelectFrom picks one individual from population.
	SelectFrom(population *Population) *Individual
}

// baseSelection supplies the no-op StartSelection/PreserveNext behavior
// that plain (non-elitist) selection strategies share.
type baseSelection struct{}

func (baseSelection) StartSelection(*Population) {}
func (baseSelection) PreserveNext() bool         { return false }

// TournamentSelection repeatedly samples tournamentSize individuals
// uniformly at random and returns the fittest of the sample.
type TournamentSelection struct {
	baseSelection
	tournamentSize int
}

// NewTournamentSelection builds a tournament selector.
func NewTournamentSelection(tournamentSize int) *TournamentSelection {
	return &TournamentSelection{tournamentSize: tournamentSize}
}

func (s *TournamentSelection) selectOne(population *Population) *Individual {
	return population.GetIndividual(rand.Intn(population.Size()))
}

func (s *TournamentSelection) SelectFrom(population *Population) *Individual {
	best := s.selectOne(population)

	for i := 1; i < s.tournamentSize; i++ {
		other := s.selectOne(population)
		if other.hasFitness && (!best.hasFitness || other.Fitness > best.Fitness) {
			best = other
		}
	}

	return best
}

// ElitismSelection wraps another selection strategy, additionally
// carrying the top eliteSize individuals of the previous generation
// forward unchanged before delegating the rest of the generation to the
// wrapped strategy.
//
// preserved tracks, per slot of the generation currently being bred,
// whether that slot came from direct elite carry-over rather than
// breeding — bookkeeping a caller can inspect for logging or population
// introspection without re-deriving it from individual identity.
type ElitismSelection struct {
	eliteSize int
	wrapped   Selection

	ranking            []int
	numSelectedElites  int
	preserved          *bitset.BitSet
}

// NewElitismSelection wraps wrapped, preserving the top eliteSize
// individuals of each generation unchanged.
func NewElitismSelection(eliteSize int, wrapped Selection) *ElitismSelection {
	return &ElitismSelection{eliteSize: eliteSize, wrapped: wrapped}
}

func (s *ElitismSelection) StartSelection(population *Population) {
	if len(s.ranking) != population.Size() {
		s.ranking = make([]int, population.Size())
		for i := range s.ranking {
			s.ranking[i] = i
		}
	}

	fitnessOf := func(idx int) float32 {
		ind := population.GetIndividual(idx)
		if !ind.hasFitness {
			return 0
		}
		return ind.Fitness
	}

	sortByFitnessDesc(s.ranking, fitnessOf)

	s.numSelectedElites = 0
	s.preserved = bitset.New(uint(population.Size()))

	s.wrapped.StartSelection(population)
}

func (s *ElitismSelection) PreserveNext() bool {
	return s.numSelectedElites < s.eliteSize
}

func (s *ElitismSelection) SelectFrom(population *Population) *Individual {
	if s.numSelectedElites < s.eliteSize {
		individual := population.GetIndividual(s.ranking[s.numSelectedElites])
		if s.preserved != nil {
			s.preserved.Set(uint(s.numSelectedElites))
		}
		s.numSelectedElites++
		return individual
	}

	return s.wrapped.SelectFrom(population)
}

// PreservedSlots reports which slots of the generation currently being
// bred were filled by direct elite carry-over. Valid only between a
// StartSelection call and the matching breeding pass completing.
func (s *ElitismSelection) PreservedSlots() *bitset.BitSet {
	return s.preserved
}

// sortByFitnessDesc sorts indices in place so that fitnessOf(indices[i])
// is non-increasing. Simple insertion sort: ranking is typically small
// (population size) and already near-sorted generation to generation.
func sortByFitnessDesc(indices []int, fitnessOf func(int) float32) {
	for i := 1; i < len(indices); i++ {
		v := indices[i]
		fv := fitnessOf(v)
		j := i - 1
		for j >= 0 && fitnessOf(indices[j]) < fv {
			indices[j+1] = indices[j]
			j--
		}
		indices[j+1] = v
	}
}
