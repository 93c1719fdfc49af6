package automaton_test

import (
	"testing"

	"golife/internal/automaton"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerGliderTerminatesAtInitialPeak(t *testing.T) {
	gol, err := automaton.New(5, 5, true)
	require.NoError(t, err)
	runner := automaton.NewRunner(20, 2.0)

	addGlider(gol, 1, 1)

	stats := runner.Run(gol)

	assert.Equal(t, uint16(5), stats.MaxCells)
	assert.Equal(t, uint32(0), stats.MaxCellsSteps)
}

func TestRunnerPentaDecathlonTerminates(t *testing.T) {
	gol, err := automaton.New(20, 15, true)
	require.NoError(t, err)
	runner := automaton.NewRunner(20, 2.0)

	for i := 5; i < 15; i++ {
		if i == 7 || i == 12 {
			gol.Set(6, i)
			gol.Set(8, i)
		} else {
			gol.Set(7, i)
		}
	}

	stats := runner.Run(gol)

	assert.Equal(t, uint16(40), stats.MaxCells)
	assert.Less(t, stats.MaxCellsSteps, uint32(15))
}

func TestRunnerGliderToggledCount(t *testing.T) {
	size := 12
	gol, err := automaton.New(size, size, true)
	require.NoError(t, err)
	runner := automaton.NewRunner(20, 2.0)

	addGlider(gol, 1, 1)

	stats := runner.Run(gol)

	assert.GreaterOrEqual(t, int(stats.NumSteps), size*4*2)
	assert.Equal(t, size*4, int(stats.NumToggled))
}
