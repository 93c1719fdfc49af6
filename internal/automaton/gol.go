// Package automaton implements a bit-packed Game of Life board (Conway's
// B3/S23 rule) and a runner that drives it to dormancy, the fitness
// oracle the evolve package searches seeds against.
package automaton

import (
	"golife/internal/bitgrid"
	"golife/internal/support"
)

const (
	bitsPerUnit    = 64
	bitsPerUnitGol = bitsPerUnit - 1
)

// GridBorder selects how the board treats cells beyond its edges.
type GridBorder int

const (
	// Zeroes treats every cell outside the board as permanently dead.
	Zeroes GridBorder = iota
	// Wrapped treats the board as toroidal: each edge's neighbor is the
	// opposite edge.
	Wrapped
)

// GameOfLife is a width x height Game of Life board. Internally the
// board is stored with a one-cell halo on every side and packed
// bitsPerUnitGol (63) logical cells per 64-bit storage word, so that a
// cell update never needs to look past the end of its own word during
// the step computation; the spillover bit (position 63) carries the
// correct value for the immediate right neighbor and is restored before
// every step.
type GameOfLife struct {
	grid        *bitgrid.BitGrid
	width       int
	height      int
	border      GridBorder
	unitsPerRow int
	numSteps    uint32
	rows        [3][]uint64
}

// New constructs a board. width and height must each be at least 3;
// wrapBorder selects Wrapped over Zeroes.
func New(width, height int, wrapBorder bool) (*GameOfLife, error) {
	border := Zeroes
	if wrapBorder {
		border = Wrapped
	}
	return newWithBorder(width, height, border)
}

func newWithBorder(width, height int, border GridBorder) (*GameOfLife, error) {
	if width < 3 || height < 3 {
		return nil, support.ConfigurationInvalid("board %dx%d too small, minimum is 3x3", width, height)
	}

	unitsPerRow := (width + 1 + (bitsPerUnitGol - 1)) / bitsPerUnitGol

	return &GameOfLife{
		grid:        bitgrid.New(unitsPerRow*bitsPerUnit, height+2),
		width:       width,
		height:      height,
		border:      border,
		unitsPerRow: unitsPerRow,
		rows: [3][]uint64{
			make([]uint64, unitsPerRow),
			make([]uint64, unitsPerRow),
			make([]uint64, unitsPerRow),
		},
	}, nil
}

func (g *GameOfLife) Width() int     { return g.width }
func (g *GameOfLife) Height() int    { return g.height }
func (g *GameOfLife) NumCells() int  { return g.width * g.height }
func (g *GameOfLife) NumSteps() uint32 { return g.numSteps }

// Grid exposes the backing padded/packed storage, for PopCounter-based
// counting routines that need CA-specific masking.
func (g *GameOfLife) Grid() *bitgrid.BitGrid { return g.grid }

// UnitsPerRow returns the number of storage words per board row,
// including the halo columns.
func (g *GameOfLife) UnitsPerRow() int { return g.unitsPerRow }

// Reset clears every cell and the step counter.
func (g *GameOfLife) Reset() {
	g.grid.Reset()
	g.numSteps = 0
}

func (g *GameOfLife) unitIndex(x, y int) int {
	return (x+1)/bitsPerUnitGol + g.unitsPerRow*(y+1)
}

func (g *GameOfLife) Get(x, y int) bool {
	unit := g.grid.Units()[g.unitIndex(x, y)]
	bitpos := uint(x+1) % bitsPerUnitGol
	return (unit>>bitpos)&1 == 1
}

func (g *GameOfLife) Set(x, y int) {
	index := g.unitIndex(x, y)
	bitpos := uint(x+1) % bitsPerUnitGol
	g.grid.Units()[index] |= 1 << bitpos
}

func (g *GameOfLife) Clear(x, y int) {
	index := g.unitIndex(x, y)
	bitpos := uint(x+1) % bitsPerUnitGol
	g.grid.Units()[index] &^= 1 << bitpos
}

func (g *GameOfLife) setZeroesBorder() {
	units := g.grid.Units()

	for i := 0; i < g.unitsPerRow; i++ {
		units[i] = 0
	}

	lastRowStart := (g.grid.Height() - 1) * g.unitsPerRow
	for i := 0; i < g.unitsPerRow; i++ {
		units[lastRowStart+i] = 0
	}

	unitIndex := g.unitsPerRow
	bitMaskL := ^uint64(0x1)
	bitMaskR := ^(uint64(0x1) << (uint(g.width)%bitsPerUnitGol + 1))
	for row := 1; row < g.grid.Height()-1; row++ {
		units[unitIndex] &= bitMaskL
		unitIndex += g.unitsPerRow - 1
		units[unitIndex] &= bitMaskR
		unitIndex++
	}
}

func (g *GameOfLife) setWrappedBorder() {
	units := g.grid.Units()

	unitIndexL := g.unitsPerRow
	unitIndexR := g.unitsPerRow*2 - 1
	bitPosLDst := uint(0)
	bitPosLSrc := uint(1)
	bitPosRDst := uint(g.width)%bitsPerUnitGol + 1
	bitPosRSrc := bitPosRDst - 1

	for row := 1; row < g.grid.Height()-1; row++ {
		units[unitIndexL] &^= 0x1 << bitPosLDst
		units[unitIndexR] &^= 0x1 << bitPosRDst

		units[unitIndexL] |= (units[unitIndexR] & (0x1 << bitPosRSrc)) >> (bitPosRSrc - bitPosLDst)
		units[unitIndexR] |= (units[unitIndexL] & (0x1 << bitPosLSrc)) << (bitPosRDst - bitPosLSrc)

		unitIndexL += g.unitsPerRow
		unitIndexR += g.unitsPerRow
	}

	firstRow := units[0:g.unitsPerRow]
	rest := units[g.unitsPerRow:]
	body := rest[:g.unitsPerRow*g.height]
	lastRow := rest[g.unitsPerRow*g.height:]

	copy(firstRow, body[g.unitsPerRow*(g.height-1):])
	copy(lastRow, body[:g.unitsPerRow])
}

func (g *GameOfLife) setBorderBits() {
	switch g.border {
	case Zeroes:
		g.setZeroesBorder()
	case Wrapped:
		g.setWrappedBorder()
	}
}

// restoreRightBits recomputes the spillover bit of every unit (position
// bitsPerUnitGol) from bit 0 of the next unit in the row, since the step
// computation below leaves it stale.
func (g *GameOfLife) restoreRightBits() {
	units := g.grid.Units()

	for unitIndex := g.unitsPerRow; unitIndex < g.unitsPerRow*(g.height+1); unitIndex++ {
		units[unitIndex] &^= 0x1 << bitsPerUnitGol
		units[unitIndex] |= (units[unitIndex+1] & 0x1) << bitsPerUnitGol
	}
}

// Step advances the board by one generation using Conway's B3/S23 rule,
// evaluated word-parallel across whole rows at a time. The bit-carry
// chain below is adapted from a widely used bitwise Life implementation
// for the Pico-8 fantasy console (rilden, lexaloffle.com/bbs/?pid=94115).
func (g *GameOfLife) Step() {
	rowAbove, rowCurrn, rowBelow := 0, 1, 2

	g.numSteps++

	g.restoreRightBits()
	g.setBorderBits()

	units := g.grid.Units()

	copy(g.rows[rowAbove], units[0:g.unitsPerRow])
	copy(g.rows[rowCurrn], units[g.unitsPerRow:g.unitsPerRow*2])

	unitIndex := g.unitsPerRow
	for row := 1; row < g.grid.Height()-1; row++ {
		copy(g.rows[rowBelow], units[g.unitsPerRow*(row+1):g.unitsPerRow*(row+2)])

		var abcSumPrev, abcCarPrev uint64

		for col := 0; col < g.unitsPerRow; col++ {
			above := g.rows[rowAbove][col]
			below := g.rows[rowBelow][col]
			currn := g.rows[rowCurrn][col]

			abSum := above ^ below
			abCar := above & below

			abcSum := currn ^ abSum
			abcCar := currn&abSum | abCar

			l := abcSum<<1 | abcSumPrev>>(bitsPerUnitGol-1)
			r := abcSum >> 1
			lr := l ^ r
			sum0 := lr ^ abSum
			car0 := l&r | lr&abSum

			l = abcCar<<1 | abcCarPrev>>(bitsPerUnitGol-1)
			r = abcCar >> 1
			lr = l ^ r
			sum1 := lr ^ abCar
			car1 := l&r | lr&abCar

			units[unitIndex] = (currn | sum0) & (car0 ^ sum1) &^ car1
			unitIndex++

			abcSumPrev = abcSum
			abcCarPrev = abcCar
		}

		rowAbove, rowCurrn, rowBelow = rowCurrn, rowBelow, rowAbove
	}
}
