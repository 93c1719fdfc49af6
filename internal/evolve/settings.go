package evolve

import "golife/internal/support"

// EaSettings collects every knob of a search run in one place, with
// defaults matching a reasonable small-scale search.
type EaSettings struct {
	// GardenSize is the width and height, in cells, of the board each
	// seed is evaluated against.
	GardenSize int

	// WrapBorder selects a toroidal board instead of a zero-bordered one.
	WrapBorder bool

	// PopulationSize is the number of individuals per generation.
	PopulationSize int

	// TournamentSize is the sample size for tournament selection.
	TournamentSize int

	// Elitism, when true, carries the fittest individual(s) of each
	// generation forward unchanged.
	Elitism     bool
	EliteSize   int

	// MutationRate is the per-bit flip probability used by BitMutation.
	MutationRate float32

	// MutationProb is the probability that mutation is applied to a
	// freshly bred child at all.
	MutationProb float32

	// RecombinationProb is the probability that a child is bred by
	// recombining two parents, rather than cloned from one.
	RecombinationProb float32

	// NPointCrossoverPoints is the number of cut points NPointCrossover
	// uses.
	NPointCrossoverPoints int

	// BitsPerCell selects the expressor: 0 or 1 uses SimpleExpressor
	// (one genotype bit per cell); anything higher uses NeutralExpressor
	// with that many bits per cell.
	BitsPerCell uint8

	Weights FitnessWeights

	// FitnessCacheSize, when positive, enables a FitnessCache sized for
	// roughly this many distinct phenotypes.
	FitnessCacheSize uint
}

// DefaultEaSettings returns a small, fast-to-run configuration suitable
// for a default CLI invocation.
func DefaultEaSettings() EaSettings {
	return EaSettings{
		GardenSize:            64,
		WrapBorder:            false,
		PopulationSize:        100,
		TournamentSize:        2,
		Elitism:               true,
		EliteSize:             1,
		MutationRate:          0.9,
		MutationProb:          0.8,
		RecombinationProb:     0.4,
		NPointCrossoverPoints: 2,
		BitsPerCell:           4,
		Weights:               DefaultFitnessWeights(),
		FitnessCacheSize:      4096,
	}
}

// SetupGA wires an EaSettings into a ready-to-run Driver, following the
// same dependency order every search needs regardless of settings: an
// expressor first (it fixes the genotype length), then an evaluator, the
// recombination/mutation operators, the selection strategy, and finally
// the driver itself.
func SetupGA(settings EaSettings) (*Driver, error) {
	expressor, err := buildExpressor(settings.BitsPerCell)
	if err != nil {
		return nil, err
	}

	calculator := NewWeightedFitness(settings.Weights)
	evaluator, err := NewSeedEvaluator(settings.GardenSize, settings.WrapBorder, calculator)
	if err != nil {
		return nil, support.WrapError(err, "setting up seed evaluator")
	}

	recombination, err := NewNPointCrossover(settings.NPointCrossoverPoints, expressor.GenotypeLength())
	if err != nil {
		return nil, err
	}
	mutation := NewBitMutation(settings.MutationRate)

	selection, err := buildSelection(settings)
	if err != nil {
		return nil, err
	}

	driver := NewDriver(DriverConfig{
		PopulationSize:    settings.PopulationSize,
		RecombinationProb: settings.RecombinationProb,
		MutationProb:      settings.MutationProb,
		Expressor:         expressor,
		Evaluator:         evaluator,
		Recombination:     recombination,
		Mutation:          mutation,
		Selection:         selection,
	})

	if settings.FitnessCacheSize > 0 {
		driver.EnableFitnessCache(NewFitnessCache(settings.FitnessCacheSize, 0.01))
	}

	return driver, nil
}

func buildExpressor(bitsPerCell uint8) (Expressor, error) {
	if bitsPerCell <= 1 {
		return NewSimpleExpressor(), nil
	}
	return NewNeutralExpressor(bitsPerCell)
}

func buildSelection(settings EaSettings) (Selection, error) {
	if settings.TournamentSize < 1 {
		return nil, support.ConfigurationInvalid("tournament size must be at least 1, got %d", settings.TournamentSize)
	}

	base := Selection(NewTournamentSelection(settings.TournamentSize))

	if !settings.Elitism {
		return base, nil
	}

	if settings.EliteSize < 1 {
		return nil, support.ConfigurationInvalid("elite size must be at least 1 when elitism is enabled, got %d", settings.EliteSize)
	}

	if settings.EliteSize > settings.PopulationSize {
		return nil, support.ConfigurationInvalid("elite size %d exceeds population size %d", settings.EliteSize, settings.PopulationSize)
	}

	return NewElitismSelection(settings.EliteSize, base), nil
}
