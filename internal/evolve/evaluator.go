package evolve

import "golife/internal/automaton"

// Evaluator assigns a fitness score to a phenotype; higher is better.
type Evaluator interface {
	Evaluate(seed *Seed) float32
}

// FitnessWeights controls how the five RunStats metrics combine into a
// single fitness score.
type FitnessWeights struct {
	NumToggledCells float32
	NumToggledSteps float32
	MaxAliveCells   float32
	MaxAliveSteps   float32
	NumStartCells   float32
}

// DefaultFitnessWeights weights only the number of distinct cells that
// were ever alive, which rewards seeds that spread rather than ones that
// merely persist.
func DefaultFitnessWeights() FitnessWeights {
	return FitnessWeights{NumToggledCells: 1.0}
}

// FitnessCalculator reduces a completed run's stats to a single score.
type FitnessCalculator interface {
	CalculateFitness(stats automaton.RunStats) float32
}

// WeightedFitness computes a weighted sum of RunStats fields.
type WeightedFitness struct {
	weights FitnessWeights
}

func NewWeightedFitness(weights FitnessWeights) *WeightedFitness {
	return &WeightedFitness{weights: weights}
}

func (w *WeightedFitness) CalculateFitness(stats automaton.RunStats) float32 {
	return float32(stats.NumToggled)*w.weights.NumToggledCells +
		float32(stats.NumToggledSteps)*w.weights.NumToggledSteps +
		float32(stats.MaxCells)*w.weights.MaxAliveCells +
		float32(stats.MaxCellsSteps)*w.weights.MaxAliveSteps +
		float32(stats.IniCells)*w.weights.NumStartCells
}

// SeedEvaluator drops a seed pattern centered on a board, runs it to
// dormancy, and scores the resulting RunStats.
type SeedEvaluator struct {
	gol        *automaton.GameOfLife
	runner     *automaton.Runner
	numCASteps uint32
	calculator FitnessCalculator
}

// NewSeedEvaluator builds an evaluator backed by a gardenSize x
// gardenSize board.
func NewSeedEvaluator(gardenSize int, wrapBorder bool, calculator FitnessCalculator) (*SeedEvaluator, error) {
	gol, err := automaton.New(gardenSize, gardenSize, wrapBorder)
	if err != nil {
		return nil, err
	}

	return &SeedEvaluator{
		gol:        gol,
		runner:     automaton.NewRunner(100, 2.0),
		calculator: calculator,
	}, nil
}

// NumCASteps returns the total number of automaton steps executed across
// every evaluation this evaluator has performed.
func (e *SeedEvaluator) NumCASteps() uint32 { return e.numCASteps }

func (e *SeedEvaluator) Evaluate(seed *Seed) float32 {
	e.gol.Reset()

	x0 := (e.gol.Width() - SeedPatchSize) / 2
	y0 := (e.gol.Height() - SeedPatchSize) / 2
	for x := 0; x < SeedPatchSize; x++ {
		for y := 0; y < SeedPatchSize; y++ {
			if seed.Grid.Get(x, y) {
				e.gol.Set(x0+x, y0+y)
			}
		}
	}

	stats := e.runner.Run(e.gol)
	e.numCASteps += stats.NumSteps

	return e.calculator.CalculateFitness(stats)
}
