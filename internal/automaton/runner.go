package automaton

import "golife/internal/bitgrid"

// Runner drives a board forward until it has been "dormant" for long
// enough, where dormancy means none of the tracked RunStats metrics
// (peak population, toggled-cell coverage, post-peak trough) have
// improved for a while.
type Runner struct {
	// minAbsoluteDormancy is the minimum number of steps the board must
	// run past the last improvement before the run can end.
	minAbsoluteDormancy uint32

	// minRelativeDormancy extends that minimum proportionally to the
	// step at which the last improvement occurred: if it happened at
	// step T, the run continues at least until T * (1 + minRelativeDormancy).
	minRelativeDormancy float32

	popCounter *bitgrid.PopCounter
}

// NewRunner builds a runner with the given dormancy thresholds.
func NewRunner(minAbsoluteDormancy uint32, minRelativeDormancy float32) *Runner {
	return &Runner{
		minAbsoluteDormancy: minAbsoluteDormancy,
		minRelativeDormancy: minRelativeDormancy,
		popCounter:          bitgrid.NewPopCounter(),
	}
}

func (r *Runner) maxSteps(steps uint32) uint32 {
	relLimit := steps + r.minAbsoluteDormancy
	absLimit := uint32(float32(steps) * (1.0 + r.minRelativeDormancy))

	if relLimit > absLimit {
		return relLimit
	}
	return absLimit
}

// Run repeatedly steps gol until it is judged dormant, returning stats
// accumulated across the whole run. gol should already contain the seed
// pattern to evaluate; Run does not reset it.
func (r *Runner) Run(gol *GameOfLife) RunStats {
	stats := newRunStats(uint16(CountLiveCells(r.popCounter, gol)))
	maxSteps := r.maxSteps(0)
	toggled := gol.grid.Clone()

	for {
		gol.Step()

		dormant := true
		numCells := uint16(CountLiveCells(r.popCounter, gol))

		switch {
		case numCells > stats.MaxCells:
			stats.MaxCells = numCells
			stats.MaxCellsSteps = gol.NumSteps()
			stats.MinCellsAfterMax = numCells
			stats.MinCellsAfterMaxSteps = stats.MaxCellsSteps
			dormant = false
		case numCells < stats.MinCellsAfterMax:
			stats.MinCellsAfterMax = numCells
			stats.MinCellsAfterMaxSteps = gol.NumSteps()
			dormant = false
		}

		toggled.Or(gol.grid)
		toggledCount := uint16(countLiveCellsIn(r.popCounter, gol, toggled))
		if toggledCount > stats.NumToggled {
			stats.NumToggled = toggledCount
			stats.NumToggledSteps = gol.NumSteps()
			dormant = false
		}

		if !dormant {
			maxSteps = r.maxSteps(gol.NumSteps())
		} else if gol.NumSteps() >= maxSteps {
			stats.NumSteps = gol.NumSteps()
			return stats
		}
	}
}
