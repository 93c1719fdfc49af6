package automaton_test

import (
	"errors"
	"testing"

	"golife/internal/automaton"
	"golife/internal/bitgrid"
	"golife/internal/support"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bitsPerUnit = 64

// addGlider places the standard south-east-drifting glider:
//
//	.#.
//	..#
//	###
func addGlider(gol *automaton.GameOfLife, x, y int) {
	gol.Set(1+x, 0+y)
	gol.Set(2+x, 1+y)
	gol.Set(0+x, 2+y)
	gol.Set(1+x, 2+y)
	gol.Set(2+x, 2+y)
}

// addLeftwardsGlider places the mirrored, south-west-drifting glider:
//
//	.#.
//	#..
//	###
func addLeftwardsGlider(gol *automaton.GameOfLife, x, y int) {
	gol.Set(1+x, 0+y)
	gol.Set(0+x, 1+y)
	gol.Set(0+x, 2+y)
	gol.Set(1+x, 2+y)
	gol.Set(2+x, 2+y)
}

func addBlinker(gol *automaton.GameOfLife, x, y int) {
	gol.Set(0+x, y)
	gol.Set(1+x, y)
	gol.Set(2+x, y)
}

func TestNewRejectsUndersizedBoard(t *testing.T) {
	_, err := automaton.New(2, 10, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, support.ErrConfigurationInvalid))
}

func TestCountCellsAllOnes(t *testing.T) {
	w, h := 58, 3
	gol, err := automaton.New(w, h, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	gol.Grid().ToggleAll()

	assert.Equal(t, w*h, automaton.CountLiveCells(pc, gol))
}

func TestGridInit(t *testing.T) {
	gol, err := automaton.New(5, 5, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	gol.Set(1, 2)
	gol.Set(2, 2)
	gol.Set(3, 2)

	assert.Equal(t, 3, automaton.CountLiveCells(pc, gol))
}

func TestEvolveBlockIsStable(t *testing.T) {
	gol, err := automaton.New(4, 4, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	gol.Set(1, 1)
	gol.Set(2, 1)
	gol.Set(1, 2)
	gol.Set(2, 2)

	gol.Step()

	assert.Equal(t, 4, automaton.CountLiveCells(pc, gol))
	assert.True(t, gol.Get(1, 1))
	assert.True(t, gol.Get(2, 1))
	assert.True(t, gol.Get(1, 2))
	assert.True(t, gol.Get(2, 2))
}

func TestEvolveBlinkerOscillates(t *testing.T) {
	gol, err := automaton.New(5, 5, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addBlinker(gol, 1, 2)
	gol.Step()

	assert.Equal(t, 3, automaton.CountLiveCells(pc, gol))
	assert.True(t, gol.Get(2, 1))
	assert.True(t, gol.Get(2, 2))
	assert.True(t, gol.Get(2, 3))
}

func TestEvolveGliderDrifts(t *testing.T) {
	gol, err := automaton.New(5, 5, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addGlider(gol, 1, 1)

	for i := 0; i < 4; i++ {
		gol.Step()
	}

	assert.Equal(t, 5, automaton.CountLiveCells(pc, gol))
	assert.True(t, gol.Get(3, 2))
	assert.True(t, gol.Get(4, 3))
	assert.True(t, gol.Get(2, 4))
	assert.True(t, gol.Get(3, 4))
	assert.True(t, gol.Get(4, 4))
}

func TestEvolveToadAcrossUnitBoundary(t *testing.T) {
	gol, err := automaton.New(bitsPerUnit*2, 6, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	gol.Set(bitsPerUnit-2, 2)
	gol.Set(bitsPerUnit-1, 2)
	gol.Set(bitsPerUnit, 2)
	gol.Set(bitsPerUnit-3, 3)
	gol.Set(bitsPerUnit-2, 3)
	gol.Set(bitsPerUnit-1, 3)

	gol.Step()
	gol.Step()

	assert.Equal(t, 6, automaton.CountLiveCells(pc, gol))
	assert.True(t, gol.Get(bitsPerUnit-2, 2))
	assert.True(t, gol.Get(bitsPerUnit-1, 2))
	assert.True(t, gol.Get(bitsPerUnit, 2))
	assert.True(t, gol.Get(bitsPerUnit-3, 3))
	assert.True(t, gol.Get(bitsPerUnit-2, 3))
	assert.True(t, gol.Get(bitsPerUnit-1, 3))
}

func TestEvolveGliderAcrossUnitBoundary(t *testing.T) {
	gol, err := automaton.New(bitsPerUnit*2, 6, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addGlider(gol, bitsPerUnit-5, 0)

	for i := 0; i < 12; i++ {
		gol.Step()
		assert.Equal(t, 5, automaton.CountLiveCells(pc, gol))
	}

	assert.True(t, gol.Get(bitsPerUnit-1, 3))
	assert.True(t, gol.Get(bitsPerUnit, 4))
	assert.True(t, gol.Get(bitsPerUnit-2, 5))
	assert.True(t, gol.Get(bitsPerUnit-1, 5))
	assert.True(t, gol.Get(bitsPerUnit, 5))
}

func TestEvolveLeftwardsGliderAcrossUnitBoundary(t *testing.T) {
	gol, err := automaton.New(bitsPerUnit*2, 6, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addLeftwardsGlider(gol, bitsPerUnit, 0)

	for i := 0; i < 12; i++ {
		gol.Step()
		assert.Equal(t, 5, automaton.CountLiveCells(pc, gol))
	}

	assert.True(t, gol.Get(bitsPerUnit-2, 3))
	assert.True(t, gol.Get(bitsPerUnit-3, 4))
	assert.True(t, gol.Get(bitsPerUnit-3, 5))
	assert.True(t, gol.Get(bitsPerUnit-2, 5))
	assert.True(t, gol.Get(bitsPerUnit-1, 5))
}

func countAcrossBoundary(t *testing.T, offset int) {
	gol, err := automaton.New(bitsPerUnit+10, 5, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addBlinker(gol, bitsPerUnit-offset, 1)
	gol.Step()

	assert.Equal(t, 3, automaton.CountLiveCells(pc, gol))
}

func TestCountAcrossBoundaryOffset4(t *testing.T) { countAcrossBoundary(t, 4) }
func TestCountAcrossBoundaryOffset3(t *testing.T) { countAcrossBoundary(t, 3) }
func TestCountAcrossBoundaryOffset2(t *testing.T) { countAcrossBoundary(t, 2) }

func evolveGliderAcrossWrappedBorder(t *testing.T, gridSize int) {
	gol, err := automaton.New(gridSize, gridSize, true)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addGlider(gol, 0, 0)

	numSteps := gridSize * 4
	for i := 0; i < numSteps; i++ {
		gol.Step()
		assert.Equal(t, 5, automaton.CountLiveCells(pc, gol))
	}

	assert.True(t, gol.Get(1, 0))
	assert.True(t, gol.Get(2, 1))
	assert.True(t, gol.Get(0, 2))
	assert.True(t, gol.Get(1, 2))
	assert.True(t, gol.Get(2, 2))
}

func TestEvolveGliderAcrossWrappedBorder5x5(t *testing.T)   { evolveGliderAcrossWrappedBorder(t, 5) }
func TestEvolveGliderAcrossWrappedBorder32x32(t *testing.T) { evolveGliderAcrossWrappedBorder(t, 32) }

// Grid where a row of cells fits exactly in one storage unit.
func TestEvolveGliderAcrossWrappedBorder62x62(t *testing.T) { evolveGliderAcrossWrappedBorder(t, 62) }

// Grid where a row just requires two storage units.
func TestEvolveGliderAcrossWrappedBorder63x63(t *testing.T) { evolveGliderAcrossWrappedBorder(t, 63) }
func TestEvolveGliderAcrossWrappedBorder64x64(t *testing.T) { evolveGliderAcrossWrappedBorder(t, 64) }

func evolveGliderAgainstZeroesBorder(t *testing.T, w int) {
	gol, err := automaton.New(w, 8, false)
	require.NoError(t, err)
	pc := bitgrid.NewPopCounter()

	addGlider(gol, w-5, 1)

	for i := 0; i < 30; i++ {
		gol.Step()
	}

	assert.Equal(t, 4, automaton.CountLiveCells(pc, gol))
	assert.True(t, gol.Get(w-2, 5))
	assert.True(t, gol.Get(w-1, 5))
	assert.True(t, gol.Get(w-2, 6))
	assert.True(t, gol.Get(w-1, 6))
}

func TestEvolveGliderAgainstZeroesBorderW62(t *testing.T) { evolveGliderAgainstZeroesBorder(t, 62) }
func TestEvolveGliderAgainstZeroesBorderW63(t *testing.T) { evolveGliderAgainstZeroesBorder(t, 63) }
func TestEvolveGliderAgainstZeroesBorderW64(t *testing.T) { evolveGliderAgainstZeroesBorder(t, 64) }
