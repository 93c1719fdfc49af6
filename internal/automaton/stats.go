package automaton

import "golife/internal/bitgrid"

// RunStats summarizes one run of a board from seeding to dormancy.
type RunStats struct {
	// IniCells is the number of cells alive at the start of the run.
	IniCells uint16

	// MaxCells is the largest number of cells ever alive simultaneously.
	MaxCells uint16
	// MaxCellsSteps is the step at which MaxCells was reached.
	MaxCellsSteps uint32

	// NumToggled is the number of distinct cells that were alive at
	// least once during the run (including the initial seed).
	NumToggled uint16
	// NumToggledSteps is the step at which NumToggled last increased.
	NumToggledSteps uint32

	// MinCellsAfterMax is the lowest live-cell count observed after
	// MaxCells was reached.
	MinCellsAfterMax uint16
	// MinCellsAfterMaxSteps is the step at which MinCellsAfterMax was
	// reached.
	MinCellsAfterMaxSteps uint32

	// NumSteps is the total number of steps executed before the runner
	// judged the board dormant.
	NumSteps uint32
}

func newRunStats(iniCells uint16) RunStats {
	return RunStats{
		IniCells:         iniCells,
		MaxCells:         iniCells,
		NumToggled:       iniCells,
		MinCellsAfterMax: iniCells,
	}
}

// countLiveCellsIn counts the live cells represented in bg, assuming bg
// shares the same dimensions and unit layout as gol's own board. This is
// used both to count gol's current state and, separately, to count a
// standalone "ever alive" bit grid accumulated alongside it (see
// Runner.Run), since both need the same halo/spillover
// exclusion rules applied.
func countLiveCellsIn(pc *bitgrid.PopCounter, gol *GameOfLife, bg *bitgrid.BitGrid) int {
	maskC := ^(uint64(1) << bitsPerUnitGol)
	maskL := maskC &^ 1
	maskR := maskC
	if gol.unitsPerRow == 1 {
		maskR = maskL
	}

	bitsInLastUnit := gol.width%bitsPerUnitGol + 1
	if bitsInLastUnit < bitsPerUnit {
		maskR &= ^uint64(0) >> uint(bitsPerUnit-bitsInLastUnit)
	}

	units := bg.Units()
	count := 0
	i := 0
	start := gol.unitsPerRow
	end := gol.unitsPerRow * (gol.height + 1)

	for _, unit := range units[start:end] {
		var mask uint64
		switch {
		case i == gol.unitsPerRow-1:
			mask = maskR
			i = 0
		case i == 0:
			mask = maskL
			i = 1
		default:
			mask = maskC
			i++
		}

		count += pc.CountUnitBitsMasked(unit, mask)
	}

	return count
}

// CountLiveCells counts the board's current live cells, excluding the
// halo border and the per-unit spillover bit.
func CountLiveCells(pc *bitgrid.PopCounter, gol *GameOfLife) int {
	return countLiveCellsIn(pc, gol, gol.grid)
}
